// Package model はコード生成の入力となるクラスモデルと、
// 生成結果である MethodSpec（抽象的なメソッド本体）を定義する。
//
// ClassModel と FieldModel はモデル記述ファイルから一度だけ構築され、
// 生成処理の間は読み取り専用として扱われる。
package model

import "strings"

// ClassModel はコード生成対象のクラスを表す。
//
// Super はスーパークラスへの非所有参照であり、同じ祖先を複数の子孫が共有する。
// スーパークラスがモデル外（java.lang.Object など）の場合は nil になる。
type ClassModel struct {
	Name      string
	Package   string
	Abstract  bool
	Interface bool
	Fields    []*FieldModel
	Super     *ClassModel
	SuperName string // extends に描画される名前（モデル外の型も含む）
	Methods   []MethodSignature
}

// QualifiedName returns the package-qualified class name.
func (c *ClassModel) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// IsAbstract はクラスが abstract またはインターフェースの場合に true を返す。
func (c *ClassModel) IsAbstract() bool {
	return c.Abstract || c.Interface
}

// Superclass returns the direct superclass inside the model set, or nil.
func (c *ClassModel) Superclass() *ClassModel {
	return c.Super
}

// HasMethod は指定した名前とパラメータ型を持つメソッドが既に定義されているかを返す。
//
// パラメータ型は java.lang. プレフィックスを除いて比較するため、
// "Object" と "java.lang.Object" は同じ型として扱われる。
func (c *ClassModel) HasMethod(name string, paramTypes ...string) bool {
	for _, m := range c.Methods {
		if m.Matches(name, paramTypes...) {
			return true
		}
	}
	return false
}

// FieldModel はクラスに宣言されたフィールドを表す。
// Type は "int" や "String"、"byte[]" のような Java の型表記をそのまま保持する。
type FieldModel struct {
	Name   string
	Type   string
	Static bool
}

// MethodSignature identifies a method already declared on a class.
type MethodSignature struct {
	Name   string
	Params []string
}

// Matches reports whether the signature has the given name and parameter types.
func (s MethodSignature) Matches(name string, paramTypes ...string) bool {
	if s.Name != name || len(s.Params) != len(paramTypes) {
		return false
	}
	for i, p := range s.Params {
		if normalizeType(p) != normalizeType(paramTypes[i]) {
			return false
		}
	}
	return true
}

func normalizeType(t string) string {
	return strings.TrimPrefix(strings.TrimSpace(t), "java.lang.")
}
