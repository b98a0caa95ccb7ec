package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/xEpiqq/hivecrm/pkg/sms"
)

func sendWhatsappDigest(dueCount int, phone string) error {
	templateVariables, err := json.Marshal(map[int]string{
		1: strconv.Itoa(dueCount),
	})
	if err != nil {

		return err
	}

	msg := sms.Msg{
		To:                phone,
		TemplateVariables: templateVariables,
		TemplateId:        os.Getenv("TWILIO_TEMPLATE_ID"),
	}

	return msgSvc.SendMessage(&msg)
}
