package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/wagerengine/internal/domain"
)

func TestGetBuffer_StartsEmpty(t *testing.T) {
	buf := getBuffer()
	buf.WriteString(`{"play_id":"p-1"}`)
	putBuffer(buf)

	next := getBuffer()
	defer putBuffer(next)
	assert.Zero(t, next.Len())
	assert.GreaterOrEqual(t, next.Cap(), responseBufferSize)
}

func TestPutBuffer_DropsOversizedBuffers(t *testing.T) {
	big := bytes.NewBuffer(make([]byte, 0, 2*maxPooledResponseBytes))
	putBuffer(big)

	for i := 0; i < 8; i++ {
		buf := getBuffer()
		assert.NotSame(t, big, buf)
		assert.LessOrEqual(t, buf.Cap(), maxPooledResponseBytes)
	}
}

func TestRespondJSON_LargeListing(t *testing.T) {
	plays := make([]domain.PlayRecord, 200)
	for i := range plays {
		plays[i] = domain.PlayRecord{PlayerID: "player-1", VenueID: "venue-1", BetAmount: 10}
	}

	rec := httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, plays)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Greater(t, rec.Body.Len(), responseBufferSize)
	assert.True(t, strings.HasSuffix(rec.Body.String(), "]\n"))

	var decoded []domain.PlayRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Len(t, decoded, len(plays))

	// The pool keeps serving small settlements after a large listing
	rec = httptest.NewRecorder()
	respondJSON(rec, http.StatusOK, domain.SettlementResult{PlayID: "p-2"})
	assert.Contains(t, rec.Body.String(), `"play_id":"p-2"`)
}
