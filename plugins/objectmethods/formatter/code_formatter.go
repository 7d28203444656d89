// Package formatter は MethodSpec を Java ソースに変換し、クラスへの追加を行う。
package formatter

import (
	"fmt"
	"strings"

	"github.com/Yamashou/methodgen/model"
)

const indentUnit = "    "

// CodeFormatter は生成されるコードをフォーマットする。
type CodeFormatter struct{}

// NewCodeFormatter は新しい CodeFormatter を作成する。
func NewCodeFormatter() *CodeFormatter {
	return &CodeFormatter{}
}

// FormatMethod はメソッド宣言を文字列にフォーマットする。
//
// パラメータ:
//   - spec: 生成されたメソッド仕様
//   - indent: メソッド宣言のインデントレベル
//
// 戻り値: フォーマットされたメソッド定義（アノテーション・シグネチャ・本体）
func (f *CodeFormatter) FormatMethod(spec *model.MethodSpec, indent int) string {
	var buf strings.Builder
	tabs := strings.Repeat(indentUnit, indent)

	for _, a := range spec.Annotations {
		buf.WriteString(fmt.Sprintf("%s@%s\n", tabs, a))
	}

	// Method signature
	buf.WriteString(tabs)
	for _, m := range spec.Modifiers {
		buf.WriteString(m + " ")
	}
	buf.WriteString(fmt.Sprintf("%s %s(%s) {\n", spec.ReturnType, spec.Name, formatParams(spec.Params)))

	// Method body
	for _, stmt := range spec.Body {
		buf.WriteString(tabs + indentUnit)
		buf.WriteString(stmt.String(indent + 1))
		buf.WriteString("\n")
	}

	// Closing
	buf.WriteString(tabs + "}\n")

	return buf.String()
}

// FormatClass はクラス宣言全体を文字列にフォーマットする。
func (f *CodeFormatter) FormatClass(src *ClassSource) string {
	var buf strings.Builder
	class := src.Class

	if class.Package != "" {
		buf.WriteString(fmt.Sprintf("package %s;\n\n", class.Package))
	}

	buf.WriteString(classHeader(class))
	buf.WriteString(" {\n\n")

	// インターフェースのフィールドは暗黙に static final で初期値が必要なため出力しない
	if len(class.Fields) > 0 && !class.Interface {
		for _, field := range class.Fields {
			buf.WriteString(indentUnit + formatField(field) + "\n")
		}
		buf.WriteString("\n")
	}

	for _, m := range src.Methods {
		buf.WriteString(f.FormatMethod(m, 1))
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")

	return buf.String()
}

func classHeader(class *model.ClassModel) string {
	var buf strings.Builder

	switch {
	case class.Interface:
		buf.WriteString("public interface " + class.Name)
	case class.Abstract:
		buf.WriteString("public abstract class " + class.Name)
	default:
		buf.WriteString("public class " + class.Name)
	}

	if class.SuperName != "" {
		buf.WriteString(" extends " + class.SuperName)
	}

	return buf.String()
}

func formatField(field *model.FieldModel) string {
	if field.Static {
		return fmt.Sprintf("protected static %s %s;", field.Type, field.Name)
	}
	return fmt.Sprintf("protected %s %s;", field.Type, field.Name)
}

func formatParams(params []model.Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.Type+" "+p.Name)
	}
	return strings.Join(parts, ", ")
}
