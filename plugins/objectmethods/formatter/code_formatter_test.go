package formatter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Yamashou/methodgen/model"
)

func TestCodeFormatter_FormatMethod(t *testing.T) {
	t.Parallel()

	formatter := NewCodeFormatter()

	type args struct {
		spec   *model.MethodSpec
		indent int
	}

	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "アノテーションと修飾子を付けて描画する",
			args: args{
				spec: &model.MethodSpec{
					Name:        "hashCode",
					Modifiers:   []string{"public"},
					Annotations: []string{"Override"},
					ReturnType:  "int",
					Body: []model.Statement{
						&model.ReturnStatement{Value: model.HashCombine{Args: []model.Expr{model.FieldRef{Field: "id"}}}},
					},
				},
				indent: 1,
			},
			want: "    @Override\n" +
				"    public int hashCode() {\n" +
				"        return java.util.Objects.hash(id);\n" +
				"    }\n",
		},
		{
			name: "ネストしたブロックはインデントされる",
			args: args{
				spec: &model.MethodSpec{
					Name:       "equals",
					ReturnType: "boolean",
					Params:     []model.Param{{Type: "Object", Name: "other"}},
					Body: []model.Statement{
						&model.IfStatement{
							Condition: model.Identity{Left: model.This{}, Right: model.ParamRef{Name: "other"}},
							Body:      []model.Statement{&model.ReturnStatement{Value: model.BoolLiteral{Value: true}}},
						},
						&model.ReturnStatement{Value: model.BoolLiteral{}},
					},
				},
				indent: 0,
			},
			want: "boolean equals(Object other) {\n" +
				"    if (this == other) {\n" +
				"        return true;\n" +
				"    }\n" +
				"    return false;\n" +
				"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatter.FormatMethod(tt.args.spec, tt.args.indent)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestCodeFormatter_FormatClass(t *testing.T) {
	t.Parallel()

	formatter := NewCodeFormatter()
	toString := &model.MethodSpec{
		Name:       "toString",
		Modifiers:  []string{"public"},
		ReturnType: "String",
		Body:       []model.Statement{&model.ReturnStatement{Value: model.StringLiteral{Value: "x"}}},
	}

	tests := []struct {
		name string
		src  *ClassSource
		want string
	}{
		{
			name: "パッケージ・extends・フィールド・メソッドを描画する",
			src: &ClassSource{
				Class: &model.ClassModel{
					Name:      "Child",
					Package:   "com.example",
					SuperName: "Base",
					Fields: []*model.FieldModel{
						{Name: "name", Type: "String"},
						{Name: "COUNT", Type: "int", Static: true},
					},
				},
				Methods: []*model.MethodSpec{toString},
			},
			want: "package com.example;\n" +
				"\n" +
				"public class Child extends Base {\n" +
				"\n" +
				"    protected String name;\n" +
				"    protected static int COUNT;\n" +
				"\n" +
				"    public String toString() {\n" +
				"        return \"x\";\n" +
				"    }\n" +
				"\n" +
				"}\n",
		},
		{
			name: "abstract クラス",
			src:  &ClassSource{Class: &model.ClassModel{Name: "Shape", Abstract: true}},
			want: "public abstract class Shape {\n\n}\n",
		},
		{
			name: "インターフェースのフィールドは出力しない",
			src: &ClassSource{Class: &model.ClassModel{
				Name:      "Named",
				Interface: true,
				Fields: []*model.FieldModel{
					{Name: "NAME", Type: "String", Static: true},
					{Name: "id", Type: "int"},
				},
			}},
			want: "public interface Named {\n\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, formatter.FormatClass(tt.src)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}
