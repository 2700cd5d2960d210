package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-widget/internal/domain"
)

func TestDecodeInbound_KnownActions(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    Action
	}{
		{"setUser", `{"action":"setUser","user":{"email":"a@b.co"},"isAdmin":true,"domain":"b.co"}`, ActionSetUser},
		{"setTickets", `{"action":"setTickets","tickets":[{"_id":"t1","subject":"s"}]}`, ActionSetTickets},
		{"accessDenied", `{"action":"accessDenied","message":"no access"}`, ActionAccessDenied},
		{"error", `{"action":"error","message":"boom"}`, ActionError},
		{"ticketCreated", `{"action":"ticketCreated","ticket":{"_id":"t1"}}`, ActionTicketCreated},
		{"noteAdded", `{"action":"noteAdded","ticketId":"t1","note":{"author":"Jo","content":"hi"}}`, ActionNoteAdded},
		{"statusUpdated", `{"action":"statusUpdated","ticketId":"t1","status":"resolved"}`, ActionStatusUpdated},
		{"ticketDeleted", `{"action":"ticketDeleted","ticketId":"t1"}`, ActionTicketDeleted},
		{"profileSaved", `{"action":"profileSaved","profile":{"name":"Jo"}}`, ActionProfileSaved},
		{"fileUploaded", `{"action":"fileUploaded","url":"https://x/y.png","fileType":"image","filename":"y.png"}`, ActionFileUploaded},
		{"uploadCancelled", `{"action":"uploadCancelled"}`, ActionUploadCancelled},
		{"uploadError", `{"action":"uploadError","message":"too big"}`, ActionUploadError},
		{"showLiveIndicator", `{"action":"showLiveIndicator","show":true}`, ActionShowLiveIndicator},
		{"setContractInfo", `{"action":"setContractInfo","contract":{"adjustedTasks":3}}`, ActionSetContractInfo},
		{"setReferrals", `{"action":"setReferrals","referrals":[],"count":0}`, ActionSetReferrals},
		{"setTaskHistory", `{"action":"setTaskHistory","taskHistory":[]}`, ActionSetTaskHistory},
		{"referralAdded", `{"action":"referralAdded","tasksAdded":2}`, ActionReferralAdded},
		{"ticketTypeUpdated", `{"action":"ticketTypeUpdated","ticketId":"t1","ticketType":"bug"}`, ActionTicketTypeUpdated},
		{"projectValueUpdated", `{"action":"projectValueUpdated","ticketId":"t1","projectValue":5000}`, ActionProjectValueUpdated},
		{"internalNotesUpdated", `{"action":"internalNotesUpdated","ticketId":"t1","internalNotes":[]}`, ActionInternalNotesUpdated},
		{"statusNoteDeleted", `{"action":"statusNoteDeleted","ticketId":"t1","internalNotes":[]}`, ActionStatusNoteDeleted},
		{"realtimeNoteAdded", `{"action":"realtimeNoteAdded","ticketId":"t1","note":{"id":"n1"}}`, ActionRealtimeNoteAdded},
		{"realtimeStatusUpdated", `{"action":"realtimeStatusUpdated","ticketId":"t1","status":"closed"}`, ActionRealtimeStatusUpdated},
		{"realtimeTicketCreated", `{"action":"realtimeTicketCreated","ticket":{"_id":"t2"}}`, ActionRealtimeTicketCreated},
		{"realtimeTicketDeleted", `{"action":"realtimeTicketDeleted","ticketId":"t1"}`, ActionRealtimeTicketDeleted},
		{"realtimeInternalNotesUpdated", `{"action":"realtimeInternalNotesUpdated","ticketId":"t1","internalNotes":"[]"}`, ActionRealtimeInternalNotesUpdated},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := DecodeInbound([]byte(tc.payload))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ev.InboundAction())
		})
	}
}

func TestDecodeInbound_PayloadFields(t *testing.T) {
	ev, err := DecodeInbound([]byte(`{"action":"setUser","user":{"email":"a@b.co","name":"Ana"},"isAdmin":true,"domain":"b.co","hasProfile":true,"profile":{"name":"Ana","companyName":"B Co"}}`))
	require.NoError(t, err)

	su, ok := ev.(SetUser)
	require.True(t, ok)
	assert.Equal(t, "a@b.co", su.User.Email)
	assert.True(t, su.IsAdmin)
	assert.Equal(t, "b.co", su.Domain)
	require.NotNil(t, su.Profile)
	assert.Equal(t, "B Co", su.Profile.CompanyName)
}

func TestDecodeInbound_ProjectValueOptionals(t *testing.T) {
	ev, err := DecodeInbound([]byte(`{"action":"projectValueUpdated","ticketId":"t1","projectValue":100,"purchaseOrderReceived":true}`))
	require.NoError(t, err)

	pv, ok := ev.(ProjectValueUpdated)
	require.True(t, ok)
	require.NotNil(t, pv.PurchaseOrderReceived)
	assert.True(t, *pv.PurchaseOrderReceived)
	assert.Nil(t, pv.OpportunityCategory)

	ev, err = DecodeInbound([]byte(`{"action":"projectValueUpdated","ticketId":"t1","projectValue":100,"opportunityCategory":"Expansion","opportunityCategoryColour":"#ff8800"}`))
	require.NoError(t, err)
	pv = ev.(ProjectValueUpdated)
	assert.Nil(t, pv.PurchaseOrderReceived)
	require.NotNil(t, pv.OpportunityCategory)
	assert.Equal(t, "Expansion", *pv.OpportunityCategory)
	assert.Equal(t, "#ff8800", pv.OpportunityCategoryHex)
}

func TestDecodeInbound_UnknownAction(t *testing.T) {
	_, err := DecodeInbound([]byte(`{"action":"somethingNew","payload":1}`))
	require.ErrorIs(t, err, ErrUnknownAction)

	_, err = DecodeInbound([]byte(`{"payload":1}`))
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestDecodeInbound_MalformedJSON(t *testing.T) {
	_, err := DecodeInbound([]byte(`{not json`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownAction)
}

func TestDecodeInbound_StringWrappedInternalNotes(t *testing.T) {
	ev, err := DecodeInbound([]byte(`{"action":"internalNotesUpdated","ticketId":"t1","internalNotes":"[{\"id\":\"sn1\",\"content\":\"done\"}]"}`))
	require.NoError(t, err)

	in, ok := ev.(InternalNotesUpdated)
	require.True(t, ok)
	notes := domain.DecodeStatusNotes(in.InternalNotes)
	require.Len(t, notes, 1)
	assert.Equal(t, "sn1", notes[0].ID)
}
