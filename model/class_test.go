package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassModel_HasMethod(t *testing.T) {
	t.Parallel()

	class := &ClassModel{
		Name: "A",
		Methods: []MethodSignature{
			{Name: "toString"},
			{Name: "equals", Params: []string{"java.lang.Object"}},
			{Name: "compare", Params: []string{"A", " int "}},
		},
	}

	type args struct {
		name       string
		paramTypes []string
	}

	tests := []struct {
		name string
		args args
		want bool
	}{
		{name: "引数なしのメソッド", args: args{name: "toString"}, want: true},
		{name: "java.lang. の有無は区別しない", args: args{name: "equals", paramTypes: []string{"Object"}}, want: true},
		{name: "パラメータ型が異なる", args: args{name: "equals", paramTypes: []string{"A"}}, want: false},
		{name: "パラメータ数が異なる", args: args{name: "toString", paramTypes: []string{"int"}}, want: false},
		{name: "前後の空白は無視する", args: args{name: "compare", paramTypes: []string{"A", "int"}}, want: true},
		{name: "存在しないメソッド", args: args{name: "hashCode"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, class.HasMethod(tt.args.name, tt.args.paramTypes...)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestClassModel_QualifiedName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		class *ClassModel
		want  string
	}{
		{name: "パッケージあり", class: &ClassModel{Name: "A", Package: "com.example"}, want: "com.example.A"},
		{name: "パッケージなし", class: &ClassModel{Name: "A"}, want: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.class.QualifiedName()); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}
