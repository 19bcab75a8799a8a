package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/kodipay/rentledger/pkg/notify"
	"github.com/kodipay/rentledger/pkg/notify/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSQSNotifierSend(t *testing.T) {
	msg := notify.Message{
		TenantId:   "tenant1",
		PropertyId: "property1",
		Channel:    "sms",
		Recipient:  "+254700000001",
		Body:       "Dear Jane, your rent is due today.",
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := notify.NewSQSNotifier(mockClient, "https://sqs.local/notifications")

		mockClient.On("SendMessage", mock.Anything, mock.MatchedBy(func(input *sqs.SendMessageInput) bool {
			if *input.QueueUrl != "https://sqs.local/notifications" {
				return false
			}
			var sent notify.Message
			if err := json.Unmarshal([]byte(*input.MessageBody), &sent); err != nil {
				return false
			}
			return sent == msg
		})).Return(&sqs.SendMessageOutput{}, nil)

		err := notifier.Send(context.Background(), msg)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("SQS Fails", func(t *testing.T) {
		mockClient := new(mocks.SQSAPI)
		notifier := notify.NewSQSNotifier(mockClient, "https://sqs.local/notifications")

		mockClient.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("queue unreachable"))

		err := notifier.Send(context.Background(), msg)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send notification")
		mockClient.AssertExpectations(t)
	})
}
