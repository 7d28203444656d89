package objectmethods

import "github.com/Yamashou/methodgen/model"

const (
	methodToString = "toString"
	methodHashCode = "hashCode"
	methodEquals   = "equals"
)

// Options は生成処理の設定。
type Options struct {
	// SkipToString が true の場合、toString を生成しない。
	SkipToString bool
}

// SkipReason は生成をスキップした理由を表す。スキップはエラーではなく通常の分岐である。
type SkipReason string

const (
	SkipAbstract SkipReason = "abstract"
	SkipExists   SkipReason = "exists"
	SkipDisabled SkipReason = "disabled"
	SkipNoFields SkipReason = "no-fields"
)

// Skip records a method that was not generated.
type Skip struct {
	Method string
	Reason SkipReason
}

// Result はクラス 1 つ分の生成結果。生成されなかったメソッドは nil になる。
type Result struct {
	Class    *model.ClassModel
	ToString *model.MethodSpec
	HashCode *model.MethodSpec
	Equals   *model.MethodSpec
	Skipped  []Skip
}

// Methods returns the generated methods in toString, hashCode, equals order.
func (r *Result) Methods() []*model.MethodSpec {
	var methods []*model.MethodSpec
	for _, m := range []*model.MethodSpec{r.ToString, r.HashCode, r.Equals} {
		if m != nil {
			methods = append(methods, m)
		}
	}
	return methods
}

// Synthesizer はクラスとマージ済みフィールドリストから toString / hashCode / equals を生成する。
//
// 各メソッドの判定は独立しており、Synthesizer は入力のモデルを一切変更しない。
// 同じモデルに対して何度実行しても同じ判定・同じ本体が得られる。
type Synthesizer struct {
	opts            Options
	toStringBuilder *ToStringBuilder
	hashCodeBuilder *HashCodeBuilder
	equalsBuilder   *EqualsBuilder
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(opts Options) *Synthesizer {
	return &Synthesizer{
		opts:            opts,
		toStringBuilder: NewToStringBuilder(),
		hashCodeBuilder: NewHashCodeBuilder(),
		equalsBuilder:   NewEqualsBuilder(),
	}
}

// Synthesize は 3 つのメソッドそれぞれについて生成するかを判定し、生成する場合は本体を構築する。
func (s *Synthesizer) Synthesize(class *model.ClassModel, fields []*model.FieldModel) Result {
	result := Result{Class: class}

	if reason, skip := s.skipToString(class); skip {
		result.Skipped = append(result.Skipped, Skip{Method: methodToString, Reason: reason})
	} else {
		result.ToString = s.toStringBuilder.BuildToStringMethod(fields)
	}

	if reason, skip := s.skipHashCode(class, fields); skip {
		result.Skipped = append(result.Skipped, Skip{Method: methodHashCode, Reason: reason})
	} else {
		result.HashCode = s.hashCodeBuilder.BuildHashCodeMethod(fields)
	}

	if reason, skip := s.skipEquals(class, fields); skip {
		result.Skipped = append(result.Skipped, Skip{Method: methodEquals, Reason: reason})
	} else {
		result.Equals = s.equalsBuilder.BuildEqualsMethod(class, fields)
	}

	return result
}

// skipToString はフィールドが空でも toString を生成する（"ClassName{}" になる）。
func (s *Synthesizer) skipToString(class *model.ClassModel) (SkipReason, bool) {
	switch {
	case class.IsAbstract():
		return SkipAbstract, true
	case class.HasMethod(methodToString):
		return SkipExists, true
	case s.opts.SkipToString:
		return SkipDisabled, true
	}
	return "", false
}

// skipHashCode はフィールドの無いクラスには hashCode を生成しない。
func (s *Synthesizer) skipHashCode(class *model.ClassModel, fields []*model.FieldModel) (SkipReason, bool) {
	switch {
	case class.IsAbstract():
		return SkipAbstract, true
	case class.HasMethod(methodHashCode):
		return SkipExists, true
	case len(fields) == 0:
		return SkipNoFields, true
	}
	return "", false
}

// skipEquals はフィールドの無いクラスには equals を生成しない。
func (s *Synthesizer) skipEquals(class *model.ClassModel, fields []*model.FieldModel) (SkipReason, bool) {
	switch {
	case class.IsAbstract():
		return SkipAbstract, true
	case class.HasMethod(methodEquals, "Object"):
		return SkipExists, true
	case len(fields) == 0:
		return SkipNoFields, true
	}
	return "", false
}
