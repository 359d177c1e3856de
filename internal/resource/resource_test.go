package resource

import (
	"testing"
)

// TestContentType は拡張子からContent-Typeへの変換をテストする
func TestContentType(t *testing.T) {
	testCases := []struct {
		name     string
		ext      string
		expected string
	}{
		{"HTML", ".html", "text/html; charset=utf-8"},
		{"CSS", ".css", "text/css; charset=utf-8"},
		{"JavaScript", ".js", "text/javascript; charset=utf-8"},
		{"PNG画像", ".png", "image/png"},
		{"大文字の拡張子", ".CSS", "text/css; charset=utf-8"},
		{"未知の拡張子", ".xyz", "text/plain; charset=utf-8"},
		{"空の拡張子", "", "text/plain; charset=utf-8"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := ContentType(tc.ext)
			if actual != tc.expected {
				t.Errorf("Content-Typeが一致しません: got %s, want %s", actual, tc.expected)
			}
		})
	}
}

// TestResolveTemplates はテンプレートルートの解決をテストする
func TestResolveTemplates(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		expectedFile string
	}{
		{"ホームページ", "/", "index.html"},
		{"電卓ページ", "/calculator", "calculator.html"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			desc := Resolve(tc.path)
			if desc.Kind != KindTemplate {
				t.Fatalf("テンプレートとして解決されませんでした: %v", desc.Kind)
			}
			if desc.TemplatePath != tc.expectedFile {
				t.Errorf("テンプレートパスが一致しません: got %s, want %s", desc.TemplatePath, tc.expectedFile)
			}
			if desc.StaticPath != "" {
				t.Errorf("静的パスが設定されています: %s", desc.StaticPath)
			}
			if desc.ContentType != "text/html; charset=utf-8" {
				t.Errorf("Content-Typeが一致しません: %s", desc.ContentType)
			}
		})
	}
}

// TestResolveStatic は静的ファイルパスの解決をテストする
func TestResolveStatic(t *testing.T) {
	testCases := []struct {
		name         string
		path         string
		expectedPath string
		expectedType string
	}{
		{"CSSファイル", "/style.css", "style.css", "text/css; charset=utf-8"},
		{"JSファイル", "/calculator.js", "calculator.js", "text/javascript; charset=utf-8"},
		{"PNG画像", "/img/logo.png", "img/logo.png", "image/png"},
		{"ディレクトリトラバーサル", "/../../etc/config.txt", "etc/config.txt", "text/plain; charset=utf-8"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			desc := Resolve(tc.path)
			if desc.Kind != KindStatic {
				t.Fatalf("静的ファイルとして解決されませんでした: %v", desc.Kind)
			}
			if desc.StaticPath != tc.expectedPath {
				t.Errorf("静的パスが一致しません: got %s, want %s", desc.StaticPath, tc.expectedPath)
			}
			if desc.TemplatePath != "" {
				t.Errorf("テンプレートパスが設定されています: %s", desc.TemplatePath)
			}
			if desc.ContentType != tc.expectedType {
				t.Errorf("Content-Typeが一致しません: got %s, want %s", desc.ContentType, tc.expectedType)
			}
		})
	}
}

// TestResolveNone はどのリソースにも該当しないパスの解決をテストする
func TestResolveNone(t *testing.T) {
	testCases := []struct {
		name string
		path string
	}{
		{"未登録のページ", "/foo"},
		{"拡張子なしの深いパス", "/foo/bar"},
		{"未知の拡張子", "/data.bin"},
		{"HTMLは静的ファイルとして扱わない", "/page.html"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			desc := Resolve(tc.path)
			if desc.Kind != KindNone {
				t.Errorf("KindNoneが期待されましたが、%v が返されました", desc.Kind)
			}
		})
	}
}

// TestRoutes はルート一覧の取得をテストする
func TestRoutes(t *testing.T) {
	routes := Routes()
	if len(routes) != 2 {
		t.Fatalf("ルート数が一致しません: got %d, want 2", len(routes))
	}

	found := make(map[string]bool)
	for _, r := range routes {
		found[r] = true
	}
	if !found["/"] || !found["/calculator"] {
		t.Errorf("必要なルートが含まれていません: %v", routes)
	}
}
