package notification

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBuilder(t *testing.T) {
	msg, err := NewMessageBuilder("reservation.created").
		Reservation(7).
		Room(101).
		Data(map[string]string{"confirmationNumber": "HTLABC"}).
		Build()
	require.NoError(t, err)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(msg), &event))
	assert.Equal(t, "reservation.created", event["type"])
	assert.EqualValues(t, 7, event["reservationId"])
	assert.EqualValues(t, 101, event["roomId"])
	assert.NotContains(t, event, "taskId")
	assert.NotEmpty(t, event["at"])
	assert.Equal(t, "HTLABC", event["data"].(map[string]interface{})["confirmationNumber"])
}

func TestMelodyService_WithoutHub(t *testing.T) {
	assert.Error(t, NewMelodyService(nil).SendMessage("{}"))
	assert.NoError(t, NopService{}.SendMessage("{}"))
}
