package gateway

// CreateRequest 返金・検証の作成リクエスト
type CreateRequest struct {
	MerchantID string
	RequestID  string
	Body       []byte // ワイヤーJSON
}

// GetRequest リクエストIDによる取得リクエスト
type GetRequest struct {
	MerchantID        string
	RequestIdentifier string
}

// GetByIDRequest 取引IDによる取得リクエスト
type GetByIDRequest struct {
	MerchantID    string
	TransactionID string
}

// Result 処理結果
type Result struct {
	TransactionID string
	Body          []byte // レスポンスのJSON
	Replayed      bool   // 保存済みのレスポンスを返した
}
