package server

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"kamishibai/internal/resource"

	"github.com/gin-gonic/gin"
)

// handleHealth はヘルスチェックエンドポイントの実装
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleStatus はシステム状態取得エンドポイントの実装
func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "running",
		"server": gin.H{
			"host": s.config.Server.Host,
			"port": s.config.Server.Port,
		},
		"routes":    len(resource.Routes()),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handlePage は固定ルートに対応するテンプレートページを配信する
func (s *Server) handlePage(c *gin.Context) {
	desc := resource.Resolve(c.Request.URL.Path)
	if desc.Kind != resource.KindTemplate {
		// 登録済みルートのみがここに到達するため通常は起こらない
		s.renderNotFound(c)
		return
	}

	body, err := s.renderTemplate(desc.TemplatePath)
	if err != nil {
		// 詳細はサーバーログにのみ残し、クライアントには定型文を返す
		log.Printf("テンプレートのレンダリングに失敗しました (%s): %v", desc.TemplatePath, err)
		c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("internal server error"))
		return
	}

	c.Data(http.StatusOK, desc.ContentType, body)
}

// handleUnrouted は固定ルート以外のすべてのパスを処理する
// 静的ファイルの拡張子を持つパスはファイル配信を試み、
// それ以外および読み込みに失敗したパスは404フローへ進む
func (s *Server) handleUnrouted(c *gin.Context) {
	desc := resource.Resolve(c.Request.URL.Path)
	if desc.Kind != resource.KindStatic {
		s.renderNotFound(c)
		return
	}

	data, err := os.ReadFile(filepath.Join(s.config.Content.StaticDir, filepath.FromSlash(desc.StaticPath)))
	if err != nil {
		// 読み込み失敗は種別を問わず404フローへ（再試行はしない）
		s.renderNotFound(c)
		return
	}

	// バイナリセーフ: 読み込んだバイト列を無変換で返す
	c.Data(http.StatusOK, desc.ContentType, data)
}

// renderNotFound はフォールバックページをレンダリングして404を返す
// フォールバックテンプレート自体が読めない場合のみ500を返す
func (s *Server) renderNotFound(c *gin.Context) {
	body, err := s.renderTemplate(resource.FallbackTemplate)
	if err != nil {
		log.Printf("フォールバックページのレンダリングに失敗しました: %v", err)
		c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("internal server error"))
		return
	}

	c.Data(http.StatusNotFound, resource.ContentType(".html"), body)
}

// renderTemplate はテンプレートファイルをリクエストごとに読み込んでレンダリングする
// 動的データは渡さない（テンプレート自身の内容のみをレンダリングする）
func (s *Server) renderTemplate(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.config.Content.TemplateDir, name))
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Parse(string(data))
	if err != nil {
		return nil, err
	}

	// 部分的な書き込みを避けるため、バッファにレンダリングしてから返す
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
