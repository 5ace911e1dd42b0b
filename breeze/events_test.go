package breeze

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.Equal(t, "start=2024-01-01&end=2024-01-31", r.URL.RawQuery)
		json.NewEncoder(w).Encode([]Event{{ID: "1", Name: "Sunday Service"}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	events, err := client.ListEvents(context.Background(), EventsOptions{
		Start: "2024-01-01",
		End:   "2024-01-31",
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Sunday Service", events[0].Name)
}

func TestGetEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/events/list_event", r.URL.Path)
			assert.Equal(t, "instance_id=42", r.URL.RawQuery)
			json.NewEncoder(w).Encode(Event{ID: "42", Name: "Potluck"})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		event, err := client.GetEvent(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "Potluck", event.Name)
	})

	t.Run("missing instance ID", func(t *testing.T) {
		client := newTestClient(t, "http://unused")
		_, err := client.GetEvent(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestAddAttendance(t *testing.T) {
	t.Run("check in", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/events/attendance/add", r.URL.Path)
			assert.Equal(t, "person_id=123&instance_id=456&direction=in", r.URL.RawQuery)
			w.Write([]byte(`true`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		require.NoError(t, client.CheckInPerson(context.Background(), "123", "456"))
	})

	t.Run("check out", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "person_id=123&instance_id=456&direction=out", r.URL.RawQuery)
			w.Write([]byte(`true`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		require.NoError(t, client.CheckOutPerson(context.Background(), "123", "456"))
	})

	t.Run("validation happens before any request", func(t *testing.T) {
		var requests atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.Write([]byte(`true`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		ctx := context.Background()

		assert.ErrorIs(t, client.AddAttendance(ctx, "", "456", DirectionIn), ErrInvalidArgument)
		assert.ErrorIs(t, client.AddAttendance(ctx, "123", "", DirectionIn), ErrInvalidArgument)
		assert.ErrorIs(t, client.AddAttendance(ctx, "123", "456", "sideways"), ErrInvalidArgument)
		assert.Equal(t, int64(0), requests.Load())
	})
}

func TestListAttendance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/events/attendance/list", r.URL.Path)
			assert.Equal(t, "instance_id=456&details=1", r.URL.RawQuery)
			json.NewEncoder(w).Encode([]AttendanceRecord{{InstanceID: "456", PersonID: "123"}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		records, err := client.ListAttendance(context.Background(), "456", true)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "123", records[0].PersonID)
	})

	t.Run("missing instance ID", func(t *testing.T) {
		client := newTestClient(t, "http://unused")
		_, err := client.ListAttendance(context.Background(), "", false)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestListEligiblePeople(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/events/attendance/eligible", r.URL.Path)
			assert.Equal(t, "instance_id=456", r.URL.RawQuery)
			json.NewEncoder(w).Encode([]Person{{ID: "123"}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		people, err := client.ListEligiblePeople(context.Background(), "456")
		require.NoError(t, err)
		require.Len(t, people, 1)
	})

	t.Run("missing instance ID", func(t *testing.T) {
		client := newTestClient(t, "http://unused")
		_, err := client.ListEligiblePeople(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestAttendanceDirectionValid(t *testing.T) {
	assert.True(t, DirectionIn.Valid())
	assert.True(t, DirectionOut.Valid())
	assert.False(t, AttendanceDirection("").Valid())
	assert.False(t, AttendanceDirection("inout").Valid())
}
