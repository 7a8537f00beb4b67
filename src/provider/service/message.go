package provider_service

import (
	"context"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	bootstrap_module "github.com/Rfluid/whatsapp-cloud-api/src/bootstrap"
	message_module "github.com/Rfluid/whatsapp-cloud-api/src/message"
	content_module "github.com/Rfluid/whatsapp-cloud-api/src/message/content"
)

func (c *GraphClient) SendMessage(
	ctx context.Context,
	sender provider_model.Sender,
	msg provider_model.TextMessage,
) (provider_model.MessageReceipt, error) {
	payload := message_module.Message{
		Direction: message_module.Direction{To: msg.To, Type: content_module.Text},
		Content:   message_module.Content{Text: &content_module.TextData{Body: msg.Body}},
	}
	payload.Default.SetDefault()

	var resp message_module.Response
	err := c.callCloudAPI(ctx, OpSendMessage, sender, func(api bootstrap_module.WhatsAppAPI) error {
		var err error
		resp, err = message_module.Send(api, payload)
		return err
	})
	if err != nil {
		return provider_model.MessageReceipt{}, err
	}
	if len(resp.Messages) == 0 || resp.Messages[0].ID.ID == "" {
		return provider_model.MessageReceipt{}, &MalformedResponseError{Operation: OpSendMessage, Reason: "message id missing"}
	}

	receipt := provider_model.MessageReceipt{MessagingProduct: resp.MessagingProduct.MessagingProduct}
	for _, contact := range resp.Contacts {
		receipt.Contacts = append(receipt.Contacts, provider_model.MessageContact{Input: contact.Input, WaID: contact.WAID})
	}
	for _, m := range resp.Messages {
		receipt.Messages = append(receipt.Messages, provider_model.MessageID{ID: m.ID.ID, MessageStatus: string(m.MessageStatus)})
	}
	return receipt, nil
}
