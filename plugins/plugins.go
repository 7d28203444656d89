package plugins

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Yamashou/methodgen/config"
	"github.com/Yamashou/methodgen/model"
	"github.com/Yamashou/methodgen/plugins/objectmethods"
	"github.com/Yamashou/methodgen/plugins/objectmethods/formatter"
)

// GenerateCode は Unit の全クラスに objectmethods プラグインを実行し、
// 生成メソッドを追加したクラスを Java ソースとして w に書き出す。
func GenerateCode(ctx context.Context, cfg *config.Config, unit *model.Unit, w io.Writer, logger *slog.Logger) error {
	objectMethods := objectmethods.New(objectmethods.Options{
		SkipToString: cfg.ObjectMethods.SkipToString,
	})

	results, err := objectMethods.Generate(ctx, unit)
	if err != nil {
		return fmt.Errorf("%s failed: %w", objectMethods.Name(), err)
	}

	f := formatter.NewCodeFormatter()
	for i, result := range results {
		for _, skip := range result.Skipped {
			logger.DebugContext(ctx, "skip method",
				slog.String("class", result.Class.QualifiedName()),
				slog.String("method", skip.Method),
				slog.String("reason", string(skip.Reason)),
			)
		}

		src, err := formatter.Attach(result.Class, result.Methods()...)
		if err != nil {
			return fmt.Errorf("attach failed: %w", err)
		}

		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("write failed: %w", err)
			}
		}
		if _, err := io.WriteString(w, f.FormatClass(src)); err != nil {
			return fmt.Errorf("write failed: %w", err)
		}
	}

	return nil
}
