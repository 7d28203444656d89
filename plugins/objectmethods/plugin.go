// Package objectmethods はクラスモデルに対して toString / equals / hashCode の
// メソッド仕様を生成するプラグインを提供する。
//
// 生成は 2 段階で行われる:
//   - FieldResolver が継承チェーンを辿り、祖先から順にインスタンスフィールドを並べる
//   - Synthesizer が既存メソッドとフィールドの有無から生成可否を判定し、本体を構築する
//
// 生成結果は model.MethodSpec として返され、クラスへの追加（attach）と
// Java ソースへの変換は formatter パッケージが担当する。
package objectmethods

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Yamashou/methodgen/model"
)

// Plugin はコンパイル単位の全クラスに対して FieldResolver と Synthesizer を実行する。
type Plugin struct {
	resolver    *FieldResolver
	synthesizer *Synthesizer
}

// New は新しい objectmethods プラグインインスタンスを作成する。
func New(opts Options) *Plugin {
	return &Plugin{
		resolver:    NewFieldResolver(),
		synthesizer: NewSynthesizer(opts),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "objectmethods"
}

// GenerateClass resolves the fields of a single class and synthesizes its methods.
func (p *Plugin) GenerateClass(class *model.ClassModel) Result {
	fields := p.resolver.ResolveFields(class)
	return p.synthesizer.Synthesize(class, fields)
}

// Generate は Unit 内の全クラスを処理し、宣言順に Result を返す。
//
// クラス同士は状態を共有しないため並列に処理する。各 Result は自分のクラスの
// スロットにだけ書き込まれ、モデルは読み取りのみ行う。
func (p *Plugin) Generate(ctx context.Context, unit *model.Unit) ([]Result, error) {
	results := make([]Result, len(unit.Classes))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, class := range unit.Classes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", class.QualifiedName(), err)
			}
			results[i] = p.GenerateClass(class)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
