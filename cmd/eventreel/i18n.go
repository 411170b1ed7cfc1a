// Package main provides localization for the eventreel CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		"Stitch numbered event directories of JPEG frames into WebM videos": "番号付きイベントディレクトリのJPEGフレームをWebM動画に結合",

		// Flags
		"Path to a YAML configuration file":                            "YAML設定ファイルのパス",
		"Name of the output directory created under the base directory": "ベースディレクトリ配下に作成する出力ディレクトリ名",
		"Frame rate used when none can be estimated":                   "推定できない場合に使用するフレームレート",
		"Path to the ffmpeg executable":                                "ffmpeg実行ファイルのパス",
		"Log level (debug, info, warn, error)":                         "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                      "すべてのログ出力を抑制",

		// Errors
		"Expected exactly one base directory argument": "ベースディレクトリ引数を1つだけ指定してください",
	})
}
