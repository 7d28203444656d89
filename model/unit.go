package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName         = errors.New("empty name")
	ErrDuplicateClass    = errors.New("duplicate class")
	ErrDuplicateField    = errors.New("duplicate field")
	ErrCyclicInheritance = errors.New("cyclic inheritance")
)

// File はモデル記述ファイル（YAML / JSON）1 つ分の内容を表す。
type File struct {
	Package string      `yaml:"package,omitempty" json:"package,omitempty"`
	Classes []ClassDecl `yaml:"classes" json:"classes"`
}

// ClassDecl is the declaration of a class in a model file.
type ClassDecl struct {
	Name      string       `yaml:"name" json:"name"`
	Extends   string       `yaml:"extends,omitempty" json:"extends,omitempty"`
	Abstract  bool         `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	Interface bool         `yaml:"interface,omitempty" json:"interface,omitempty"`
	Fields    []FieldDecl  `yaml:"fields,omitempty" json:"fields,omitempty"`
	Methods   []MethodDecl `yaml:"methods,omitempty" json:"methods,omitempty"`
}

// FieldDecl is the declaration of a field in a model file.
type FieldDecl struct {
	Name   string `yaml:"name" json:"name"`
	Type   string `yaml:"type" json:"type"`
	Static bool   `yaml:"static,omitempty" json:"static,omitempty"`
}

// MethodDecl is an existing method signature in a model file.
type MethodDecl struct {
	Name   string   `yaml:"name" json:"name"`
	Params []string `yaml:"params,omitempty" json:"params,omitempty"`
}

// Unit はコンパイル単位に含まれる全クラスを宣言順に保持する。
type Unit struct {
	Classes []*ClassModel
	byName  map[string]*ClassModel
}

// Lookup returns the class with the given qualified name.
func (u *Unit) Lookup(qualifiedName string) (*ClassModel, bool) {
	c, ok := u.byName[qualifiedName]
	return c, ok
}

// Link はモデル記述ファイル群から Unit を構築する。
//
// extends は以下の順で解決する:
//  1. パッケージ修飾名が一致するクラス
//  2. 同じパッケージ内で単純名が一致するクラス
//
// どちらにも一致しない場合はモデル外の型とみなし、Super は nil のままになる。
// 重複したクラス名・フィールド名、循環した継承はエラーとして返す。
func Link(files ...*File) (*Unit, error) {
	unit := &Unit{byName: make(map[string]*ClassModel)}
	decls := make(map[*ClassModel]ClassDecl)

	for _, f := range files {
		for _, decl := range f.Classes {
			class, err := newClass(f.Package, decl)
			if err != nil {
				return nil, err
			}
			if _, ok := unit.byName[class.QualifiedName()]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, class.QualifiedName())
			}
			unit.byName[class.QualifiedName()] = class
			unit.Classes = append(unit.Classes, class)
			decls[class] = decl
		}
	}

	for _, class := range unit.Classes {
		extends := decls[class].Extends
		if extends == "" {
			continue
		}
		class.SuperName = extends
		class.Super = unit.resolve(class.Package, extends)
	}

	for _, class := range unit.Classes {
		if err := checkAcyclic(class); err != nil {
			return nil, err
		}
	}

	return unit, nil
}

func newClass(pkg string, decl ClassDecl) (*ClassModel, error) {
	if decl.Name == "" {
		return nil, fmt.Errorf("%w: class in package %q", ErrEmptyName, pkg)
	}

	class := &ClassModel{
		Name:      decl.Name,
		Package:   pkg,
		Abstract:  decl.Abstract,
		Interface: decl.Interface,
		Fields:    make([]*FieldModel, 0, len(decl.Fields)),
	}

	seen := make(map[string]struct{}, len(decl.Fields))
	for _, fd := range decl.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("%w: field of %s", ErrEmptyName, class.QualifiedName())
		}
		if _, ok := seen[fd.Name]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, class.QualifiedName(), fd.Name)
		}
		seen[fd.Name] = struct{}{}
		class.Fields = append(class.Fields, &FieldModel{Name: fd.Name, Type: fd.Type, Static: fd.Static})
	}

	for _, md := range decl.Methods {
		if md.Name == "" {
			return nil, fmt.Errorf("%w: method of %s", ErrEmptyName, class.QualifiedName())
		}
		class.Methods = append(class.Methods, MethodSignature{Name: md.Name, Params: md.Params})
	}

	return class, nil
}

func (u *Unit) resolve(pkg, name string) *ClassModel {
	if c, ok := u.byName[name]; ok {
		return c
	}
	if pkg != "" {
		if c, ok := u.byName[pkg+"."+name]; ok {
			return c
		}
	}
	return nil
}

func checkAcyclic(class *ClassModel) error {
	visited := map[*ClassModel]struct{}{class: {}}
	for c := class.Super; c != nil; c = c.Super {
		if _, ok := visited[c]; ok {
			return fmt.Errorf("%w: %s", ErrCyclicInheritance, class.QualifiedName())
		}
		visited[c] = struct{}{}
	}
	return nil
}
