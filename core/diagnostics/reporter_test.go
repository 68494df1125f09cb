package diagnostics_test

import (
	"context"
	"testing"

	"objectfs/core/diagnostics"
	"objectfs/core/objectclient"
	"objectfs/core/objectclient/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRender_ConnectionFailed(t *testing.T) {
	client := new(mocks.Client)
	client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionFailed("timeout"))

	messages := diagnostics.NewReporter().Render(context.Background(), client, true)

	require.Len(t, messages, 1)
	assert.Equal(t, "Could not establish connection to the storage: timeout", messages[0].Text)
	assert.Equal(t, objectclient.SeverityError, messages[0].Severity)
	client.AssertNotCalled(t, "TestPermissions", mock.Anything, mock.Anything)
}

func TestRender_PermissionMessagesInOrder(t *testing.T) {
	client := new(mocks.Client)
	client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionOK())
	client.On("TestPermissions", mock.Anything, true).Return(objectclient.PermissionResult{
		Success: false,
		Messages: []objectclient.Message{
			{Text: objectclient.MsgWriteFailed, Severity: objectclient.SeverityWarning},
			{Text: objectclient.MsgReadFailed, Severity: objectclient.SeverityWarning},
		},
	})

	messages := diagnostics.NewReporter().Render(context.Background(), client, true)

	assert.Equal(t, []objectclient.Message{
		{Text: diagnostics.MsgConnectionEstablished, Severity: objectclient.SeveritySuccess},
		{Text: objectclient.MsgWriteFailed, Severity: objectclient.SeverityWarning},
		{Text: objectclient.MsgReadFailed, Severity: objectclient.SeverityWarning},
	}, messages)
}

func TestRender_SuccessWithoutMessages(t *testing.T) {
	client := new(mocks.Client)
	client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionOK())
	client.On("TestPermissions", mock.Anything, false).Return(objectclient.PermissionResult{Success: true})

	messages := diagnostics.NewReporter().Render(context.Background(), client, false)

	require.Len(t, messages, 1)
	assert.Equal(t, diagnostics.MsgConnectionEstablished, messages[0].Text)
	client.AssertNotCalled(t, "TestRangeRequest", mock.Anything)
}

func TestRender_RangeCheck(t *testing.T) {
	tests := []struct {
		name      string
		supported bool
		want      objectclient.Message
	}{
		{"Supported", true, objectclient.Message{Text: diagnostics.MsgRangeSupported, Severity: objectclient.SeverityInfo}},
		{"Unsupported", false, objectclient.Message{Text: diagnostics.MsgRangeUnsupported, Severity: objectclient.SeverityWarning}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionOK())
			client.On("TestPermissions", mock.Anything, false).Return(objectclient.PermissionResult{Success: true})
			client.On("TestRangeRequest", mock.Anything).Return(tt.supported)

			messages := diagnostics.NewReporter(diagnostics.WithRangeCheck()).Render(context.Background(), client, false)

			require.Len(t, messages, 2)
			assert.Equal(t, tt.want, messages[1])
		})
	}
}

func TestRender_RangeCheckSkippedOnPermissionFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionOK())
	client.On("TestPermissions", mock.Anything, false).Return(objectclient.PermissionResult{Success: false})

	diagnostics.NewReporter(diagnostics.WithRangeCheck()).Render(context.Background(), client, false)

	client.AssertNotCalled(t, "TestRangeRequest", mock.Anything)
}

func TestRender_RunObserver(t *testing.T) {
	client := new(mocks.Client)
	client.On("TestConnection", mock.Anything).Return(objectclient.ConnectionFailed("refused"))

	var got []objectclient.Message
	r := diagnostics.NewReporter(diagnostics.WithRunObserver(func(m []objectclient.Message) { got = m }))
	r.Render(context.Background(), client, false)

	require.Len(t, got, 1)
	assert.Contains(t, got[0].Text, "refused")
}
