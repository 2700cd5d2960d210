package channel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

func decodeEnvelope(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	return fields
}

func TestEncodeOutbound_Envelope(t *testing.T) {
	data, err := EncodeOutbound(AddNote{TicketID: "t1", Content: "hello"})
	require.NoError(t, err)

	fields := decodeEnvelope(t, data)
	assert.Equal(t, "addNote", fields["action"])
	assert.Equal(t, "t1", fields["ticketId"])
	assert.Equal(t, "hello", fields["content"])

	id, ok := fields["commandId"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	sentAt, ok := fields["sentAt"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, sentAt)
	assert.NoError(t, err)
}

func TestEncodeOutbound_FreshCommandIDs(t *testing.T) {
	first, err := EncodeOutbound(Ready{})
	require.NoError(t, err)
	second, err := EncodeOutbound(Ready{})
	require.NoError(t, err)

	assert.NotEqual(t,
		decodeEnvelope(t, first)["commandId"],
		decodeEnvelope(t, second)["commandId"])
}

func TestEncodeOutbound_EmptyBodyCommands(t *testing.T) {
	for _, cmd := range []Outbound{Ready{}, RequestUpload{}, GetTaskHistory{}} {
		data, err := EncodeOutbound(cmd)
		require.NoError(t, err)
		assert.Equal(t, string(cmd.OutboundAction()), decodeEnvelope(t, data)["action"])
	}
}

func TestEncodeOutbound_NavigateUsesTargetAsAction(t *testing.T) {
	data, err := EncodeOutbound(Navigate{To: ActionAccountSettings})
	require.NoError(t, err)
	fields := decodeEnvelope(t, data)
	assert.Equal(t, "accountSettings", fields["action"])
	assert.NotContains(t, fields, "modal")

	data, err = EncodeOutbound(Navigate{To: ActionModalOpened, Modal: "referral"})
	require.NoError(t, err)
	fields = decodeEnvelope(t, data)
	assert.Equal(t, "modalOpened", fields["action"])
	assert.Equal(t, "referral", fields["modal"])
}

func TestEncodeOutbound_AttachmentOmittedWhenNil(t *testing.T) {
	data, err := EncodeOutbound(AddNote{TicketID: "t1", Content: "plain"})
	require.NoError(t, err)
	assert.NotContains(t, decodeEnvelope(t, data), "attachment")

	data, err = EncodeOutbound(AddNote{
		TicketID:   "t1",
		Attachment: &domain.Attachment{URL: "https://x/y.pdf", Type: domain.AttachmentDocument, Filename: "y.pdf"},
	})
	require.NoError(t, err)
	fields := decodeEnvelope(t, data)
	att, ok := fields["attachment"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "document", att["type"])
}
