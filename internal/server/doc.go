// Package server は、HTTPサーバーとページ配信を管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// テンプレートのレンダリング、静的ファイルの配信を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 固定ルートに対するテンプレートページの配信
//   - 静的ファイル（CSS/JS/画像）の配信
//   - 見つからないリソースに対するフォールバックページ
//   - リクエストごとのアクセスログ
//
// 仕様:
//   - ルーティングにはgin-gonic/ginを使用
//   - テンプレートは標準ライブラリのhtml/templateでリクエストごとに読み込む
//   - グレースフルシャットダウンに対応
//   - 失敗したリクエストは再試行せず、必ず1回だけレスポンスを書き込む
package server
