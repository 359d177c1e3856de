// Package resource は、リクエストパスから配信リソースへの解決を行います。
//
// ルートテーブル（固定パス → テンプレートファイル）、静的ファイルの
// 拡張子集合、拡張子 → Content-Type のテーブルを保持します。
// すべてのテーブルはプロセス起動後に変更されない読み取り専用データです。
package resource

import (
	"path"
	"strings"
)

// Kind はリソースの種別
type Kind int

const (
	// KindNone はどのリソースにも解決できなかったことを表す
	KindNone Kind = iota
	// KindTemplate はテンプレートとしてレンダリングするリソース
	KindTemplate
	// KindStatic はそのまま配信する静的ファイル
	KindStatic
)

// Descriptor はリクエストパスの解決結果
// TemplatePath と StaticPath はどちらか一方のみが設定される
type Descriptor struct {
	Kind         Kind
	TemplatePath string // テンプレートファイル名（TemplateDirからの相対）
	StaticPath   string // 静的ファイルパス（StaticDirからの相対）
	ContentType  string
}

// FallbackTemplate は見つからなかった場合に表示するページのテンプレート名
const FallbackTemplate = "notfound.html"

// routes は固定のルートテーブル（完全一致のみ、パターンマッチなし）
var routes = map[string]string{
	"/":           "index.html",
	"/calculator": "calculator.html",
}

// contentTypes は拡張子 → Content-Type のテーブル
// テキスト系はすべて UTF-8 の charset を含む
var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
	".ico":  "image/x-icon",
}

// defaultContentType は未知の拡張子に対するデフォルト値
const defaultContentType = "text/plain; charset=utf-8"

// ContentType は拡張子に対応するContent-Typeを返す
// テーブルにない拡張子にはデフォルト値を返し、失敗しない
func ContentType(ext string) string {
	if ct, ok := contentTypes[strings.ToLower(ext)]; ok {
		return ct
	}
	return defaultContentType
}

// Routes は登録されているルートパスの一覧を返す
func Routes() []string {
	paths := make([]string, 0, len(routes))
	for p := range routes {
		paths = append(paths, p)
	}
	return paths
}

// Resolve はURLパスをリソース記述子に解決する
//   - ルートテーブルに完全一致 → テンプレートリソース
//   - 静的ファイルの拡張子を持つ → 静的リソース
//   - どちらでもない → KindNone（呼び出し側が404フローへ回す）
func Resolve(urlPath string) Descriptor {
	// テンプレートルートの完全一致
	if name, ok := routes[urlPath]; ok {
		return Descriptor{
			Kind:         KindTemplate,
			TemplatePath: name,
			ContentType:  ContentType(".html"),
		}
	}

	// 静的ファイル（.html以外のテーブル登録拡張子のみ）
	ext := strings.ToLower(path.Ext(urlPath))
	if _, ok := contentTypes[ext]; ok && ext != ".html" {
		// ルート基準で正規化することで、配信ディレクトリの外へ出る参照を除去する
		cleaned := path.Clean("/" + urlPath)
		if cleaned == "/" {
			return Descriptor{Kind: KindNone}
		}
		return Descriptor{
			Kind:        KindStatic,
			StaticPath:  strings.TrimPrefix(cleaned, "/"),
			ContentType: ContentType(ext),
		}
	}

	return Descriptor{Kind: KindNone}
}
