package model

// MethodSpec は生成されるメソッドのシグネチャと抽象的な本体を表す。
// テキストへの変換は formatter が担当し、MethodSpec 自体は描画済みのコードを持たない。
type MethodSpec struct {
	Name        string
	Modifiers   []string
	Annotations []string
	ReturnType  string
	Params      []Param
	Body        []Statement
}

// Param is a method parameter.
type Param struct {
	Type string
	Name string
}

// Signature returns the name and parameter types of the method.
func (m *MethodSpec) Signature() MethodSignature {
	var params []string
	for _, p := range m.Params {
		params = append(params, p.Type)
	}
	return MethodSignature{Name: m.Name, Params: params}
}
