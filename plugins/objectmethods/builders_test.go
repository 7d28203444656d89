package objectmethods

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Yamashou/methodgen/model"
)

func renderBody(spec *model.MethodSpec) string {
	lines := make([]string, 0, len(spec.Body))
	for _, stmt := range spec.Body {
		lines = append(lines, stmt.String(0))
	}
	return strings.Join(lines, "\n")
}

func TestToStringBuilder_BuildToStringMethod(t *testing.T) {
	t.Parallel()

	builder := NewToStringBuilder()

	tests := []struct {
		name   string
		fields []*model.FieldModel
		want   string
	}{
		{
			name:   "フィールドが無い場合は ClassName{} になる",
			fields: nil,
			want:   `return getClass().getSimpleName() + "{}";`,
		},
		{
			name:   "フィールドが 1 つ",
			fields: []*model.FieldModel{field("id", "int")},
			want:   `return getClass().getSimpleName() + "{id=" + id + "}";`,
		},
		{
			name:   "隣接する文字列リテラルはまとめられる",
			fields: []*model.FieldModel{field("id", "int"), field("name", "String"), field("tags", "String[]")},
			want:   `return getClass().getSimpleName() + "{id=" + id + ", name=" + name + ", tags=" + tags + "}";`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := builder.BuildToStringMethod(tt.fields)
			if diff := cmp.Diff(tt.want, renderBody(got)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
			if diff := cmp.Diff(model.MethodSignature{Name: "toString"}, got.Signature()); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
			if diff := cmp.Diff("String", got.ReturnType); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestHashCodeBuilder_BuildHashCodeMethod(t *testing.T) {
	t.Parallel()

	builder := NewHashCodeBuilder()

	tests := []struct {
		name   string
		fields []*model.FieldModel
		want   string
	}{
		{
			name:   "宣言順に Objects.hash へ渡す",
			fields: []*model.FieldModel{field("id", "int"), field("name", "String")},
			want:   `return java.util.Objects.hash(id, name);`,
		},
		{
			name:   "配列フィールドがある場合は deepHashCode を使う",
			fields: []*model.FieldModel{field("id", "int"), field("data", "byte[]")},
			want:   `return java.util.Arrays.deepHashCode(new Object[] {id, data});`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := builder.BuildHashCodeMethod(tt.fields)
			if diff := cmp.Diff(tt.want, renderBody(got)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
			if diff := cmp.Diff("int", got.ReturnType); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}

func TestEqualsBuilder_BuildEqualsMethod(t *testing.T) {
	t.Parallel()

	builder := NewEqualsBuilder()
	class := &model.ClassModel{Name: "Child", Package: "com.example"}

	preamble := strings.Join([]string{
		"if (this == other) {",
		"    return true;",
		"}",
		"if (other == null) {",
		"    return false;",
		"}",
		"if (getClass() != other.getClass()) {",
		"    return false;",
		"}",
		"final Child o = (Child) other;",
	}, "\n")

	tests := []struct {
		name   string
		fields []*model.FieldModel
		want   string
	}{
		{
			name:   "参照型は deepEquals で比較する",
			fields: []*model.FieldModel{field("name", "String"), field("tags", "String[]")},
			want:   "return java.util.Objects.deepEquals(this.name, o.name) && java.util.Objects.deepEquals(this.tags, o.tags);",
		},
		{
			name:   "プリミティブは == で比較する",
			fields: []*model.FieldModel{field("id", "long"), field("flag", "boolean")},
			want:   "return this.id == o.id && this.flag == o.flag;",
		},
		{
			name:   "浮動小数点数は compare で比較する",
			fields: []*model.FieldModel{field("x", "float"), field("y", "double")},
			want:   "return Float.compare(this.x, o.x) == 0 && Double.compare(this.y, o.y) == 0;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := builder.BuildEqualsMethod(class, tt.fields)
			if diff := cmp.Diff(preamble+"\n"+tt.want, renderBody(got)); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
			if diff := cmp.Diff(model.MethodSignature{Name: "equals", Params: []string{"Object"}}, got.Signature()); diff != "" {
				t.Errorf("diff(-want +got): %s", diff)
			}
		})
	}
}
