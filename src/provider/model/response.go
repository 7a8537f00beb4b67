package provider_model

// Ack is the {"success": true} body the Graph API returns for state changing calls.
type Ack struct {
	Success bool `json:"success"`
}

type MessageContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type MessageID struct {
	ID            string `json:"id"`
	MessageStatus string `json:"message_status,omitempty"`
}

// MessageReceipt is returned by the provider when a message is accepted for delivery.
type MessageReceipt struct {
	MessagingProduct string           `json:"messaging_product"`
	Contacts         []MessageContact `json:"contacts"`
	Messages         []MessageID      `json:"messages"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

type NodeResponse struct {
	ID string `json:"id"`
}

// ListResponse is the paged edge envelope of Graph API collections.
type ListResponse struct {
	Data []NodeResponse `json:"data"`
}

// GraphError mirrors the error object of Graph API failures.
type GraphError struct {
	Error struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
		FBTraceID    string `json:"fbtrace_id"`
	} `json:"error"`
}
