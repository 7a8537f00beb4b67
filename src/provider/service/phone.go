package provider_service

import (
	"context"

	provider_model "github.com/Astervia/wacraft-onboarding/src/provider/model"
	bootstrap_module "github.com/Rfluid/whatsapp-cloud-api/src/bootstrap"
	common_module "github.com/Rfluid/whatsapp-cloud-api/src/common"
	phone_module "github.com/Rfluid/whatsapp-cloud-api/src/phone"
)

// RequestVerificationCode asks the provider to send a verification code by SMS or voice call.
func (c *GraphClient) RequestVerificationCode(
	ctx context.Context,
	sender provider_model.Sender,
	input provider_model.RequestCodeInput,
) (provider_model.Ack, error) {
	payload := phone_module.RequestCodePayload{
		CodeMethod: phone_module.CodeMethod(input.Method),
		Language:   input.Language,
	}
	if payload.CodeMethod == "" {
		payload.CodeMethod = phone_module.SMS
	}
	if payload.Language == "" {
		payload.Language = provider_model.DefaultLanguage
	}
	return c.ackCall(ctx, OpRequestCode, sender, func(api bootstrap_module.WhatsAppAPI) (common_module.SuccessResponse, error) {
		return phone_module.RequestCode(api, payload)
	})
}

func (c *GraphClient) VerifyCode(ctx context.Context, sender provider_model.Sender, code string) (provider_model.Ack, error) {
	return c.ackCall(ctx, OpVerifyCode, sender, func(api bootstrap_module.WhatsAppAPI) (common_module.SuccessResponse, error) {
		return phone_module.VerifyCode(api, phone_module.VerifyCodePayload{Code: code})
	})
}

// RegisterPhone registers the number on the Cloud API with its two-step verification PIN.
func (c *GraphClient) RegisterPhone(ctx context.Context, sender provider_model.Sender, pin string) (provider_model.Ack, error) {
	payload := phone_module.RegisterPayload{Pin: phone_module.Pin{Pin: pin}}
	payload.MessagingProduct.SetDefault()
	return c.ackCall(ctx, OpRegisterPhone, sender, func(api bootstrap_module.WhatsAppAPI) (common_module.SuccessResponse, error) {
		return phone_module.Register(api, payload)
	})
}

func (c *GraphClient) ackCall(
	ctx context.Context,
	operation string,
	sender provider_model.Sender,
	call func(api bootstrap_module.WhatsAppAPI) (common_module.SuccessResponse, error),
) (provider_model.Ack, error) {
	var resp common_module.SuccessResponse
	err := c.callCloudAPI(ctx, operation, sender, func(api bootstrap_module.WhatsAppAPI) error {
		var err error
		resp, err = call(api)
		return err
	})
	if err != nil {
		return provider_model.Ack{}, err
	}
	if !resp.Success {
		return provider_model.Ack{}, &MalformedResponseError{Operation: operation, Reason: "success flag not set"}
	}
	return provider_model.Ack{Success: true}, nil
}
