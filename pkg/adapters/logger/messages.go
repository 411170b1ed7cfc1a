package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Batch level messages (info)
		"Found %d event directories under %s":            "%[2]s 配下に %[1]d 個のイベントディレクトリが見つかりました",
		"Done: %d of %d videos created (%s), %d failed":  "完了: %d/%d 本の動画を作成 (%s)、%d 件失敗",
		"Interrupted":                                    "中断されました",
		"Interrupted, shutting down...":                  "中断されました。シャットダウン中...",
		"Skipping %s: %s":                                "%s をスキップします: %s",

		// Builder
		"Created video: %s (%s)":                         "動画を作成しました: %s (%s)",
		"Created video: %s":                              "動画を作成しました: %s",
		"Failed to create video for %s: %s":              "%s の動画作成に失敗しました: %s",
		"Skipping unreadable entry %s: %s":               "読み取れないエントリ %s をスキップします: %s",
		"Estimated frame rate %v fps for %s":             "%[2]s のフレームレートを %[1]v fps と推定しました",
		"Cannot estimate frame rate for %s, using default %v fps": "%s のフレームレートを推定できません。デフォルトの %v fps を使用します",
		"Degenerate frame rate %v for %s, using default %v fps":   "%[2]s のフレームレート %[1]v が不正です。デフォルトの %[3]v fps を使用します",

		// Encoder
		"Running %s %s": "実行中: %s %s",
	})
}
