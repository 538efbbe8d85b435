package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/santoso/visitor-gate/internal/service"
	"github.com/santoso/visitor-gate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postDevice(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	return resp
}

func TestGetPersonList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ts := testutil.NewTestServer(t)
	device := testutil.NewDeviceBuilder().Build(t, ts.DB.DB)

	listRequest := func(page, pageSize int) map[string]any {
		return map[string]any{
			"groupId":   device.GroupID,
			"deviceKey": device.DeviceKey,
			"page":      page,
			"pageSize":  pageSize,
		}
	}

	t.Run("empty roster is a success with total zero", func(t *testing.T) {
		ts.DB.Truncate(t)
		device = testutil.NewDeviceBuilder().Build(t, ts.DB.DB)

		resp := postDevice(t, ts.APIURL("/visitors/getPersonList"), listRequest(1, 10))
		defer resp.Body.Close()

		envelope := testutil.AssertDeviceSuccess(t, resp)
		require.NotNil(t, envelope.Total)
		assert.Equal(t, int64(0), *envelope.Total)

		var records []service.PersonRecord
		require.NoError(t, json.Unmarshal(envelope.Data, &records))
		assert.Empty(t, records)
	})

	t.Run("pages the roster in ascending record order", func(t *testing.T) {
		ts.DB.Truncate(t)
		device = testutil.NewDeviceBuilder().Build(t, ts.DB.DB)
		visitors := testutil.SeedVisitors(t, ts.DB.DB, 15)

		resp := postDevice(t, ts.APIURL("/visitors/getPersonList"), listRequest(1, 10))
		defer resp.Body.Close()

		envelope := testutil.AssertDeviceSuccess(t, resp)
		require.NotNil(t, envelope.Total)
		assert.Equal(t, int64(15), *envelope.Total)

		var page1 []service.PersonRecord
		require.NoError(t, json.Unmarshal(envelope.Data, &page1))
		require.Len(t, page1, 10)
		for i, record := range page1 {
			assert.Equal(t, visitors[i].IdcardNum, record.IdcardNum)
			assert.Len(t, record.MD5, 32)
		}

		resp2 := postDevice(t, ts.APIURL("/visitors/getPersonList"), listRequest(2, 10))
		defer resp2.Body.Close()

		envelope2 := testutil.AssertDeviceSuccess(t, resp2)
		var page2 []service.PersonRecord
		require.NoError(t, json.Unmarshal(envelope2.Data, &page2))
		require.Len(t, page2, 5)
		assert.Equal(t, visitors[10].IdcardNum, page2[0].IdcardNum)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		resp := postDevice(t, ts.APIURL("/visitors/getPersonList"), listRequest(99, 10))
		defer resp.Body.Close()

		envelope := testutil.AssertDeviceSuccess(t, resp)
		var records []service.PersonRecord
		require.NoError(t, json.Unmarshal(envelope.Data, &records))
		assert.Empty(t, records)
	})

	t.Run("unknown device key", func(t *testing.T) {
		resp := postDevice(t, ts.APIURL("/visitors/getPersonList"), map[string]any{
			"groupId":   "default",
			"deviceKey": "no-such-device",
			"page":      1,
			"pageSize":  10,
		})
		defer resp.Body.Close()

		testutil.AssertDeviceFailure(t, resp, http.StatusBadRequest, "Invalid deviceKey")
	})

	t.Run("missing parameters fail before device lookup", func(t *testing.T) {
		tests := []struct {
			name    string
			payload map[string]any
		}{
			{"no groupId", map[string]any{"deviceKey": device.DeviceKey, "page": 1, "pageSize": 10}},
			{"no deviceKey", map[string]any{"groupId": "default", "page": 1, "pageSize": 10}},
			{"zero page", map[string]any{"groupId": "default", "deviceKey": device.DeviceKey, "page": 0, "pageSize": 10}},
			{"zero pageSize", map[string]any{"groupId": "default", "deviceKey": device.DeviceKey, "page": 1, "pageSize": 0}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := postDevice(t, ts.APIURL("/visitors/getPersonList"), tt.payload)
				defer resp.Body.Close()

				testutil.AssertDeviceFailure(t, resp, http.StatusBadRequest, "Missing required parameters")
			})
		}
	})

	t.Run("no bearer token required", func(t *testing.T) {
		resp := postDevice(t, ts.APIURL("/visitors/getPersonList"), listRequest(1, 10))
		defer resp.Body.Close()

		assert.NotEqual(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetPersonInfo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ts := testutil.NewTestServer(t)
	device := testutil.NewDeviceBuilder().Build(t, ts.DB.DB)

	faceType := 1
	visitor := testutil.NewVisitorBuilder().
		WithName("Budi Santoso").
		WithIdcardNum("3175012345678901").
		WithImgBase64("aW1n").
		WithType(faceType).
		WithPasstime("2025-01-01").
		Build(t, ts.DB.DB)

	t.Run("returns the record with its fingerprint", func(t *testing.T) {
		resp := postDevice(t, ts.APIURL("/visitors/getPersonInfo"), map[string]any{
			"groupId":   device.GroupID,
			"deviceKey": device.DeviceKey,
			"idcardNum": visitor.IdcardNum,
		})
		defer resp.Body.Close()

		envelope := testutil.AssertDeviceSuccess(t, resp)

		var record service.PersonRecord
		require.NoError(t, json.Unmarshal(envelope.Data, &record))
		assert.Equal(t, visitor.IdcardNum, record.IdcardNum)
		assert.Equal(t, visitor.Name, record.Name)
		assert.Equal(t, visitor.ImgBase64, record.ImgBase64)
		require.NotNil(t, record.Type)
		assert.Equal(t, faceType, *record.Type)
		assert.Equal(t, "d704b90641f91fe4b923fe7af865ef47", record.MD5)
	})

	t.Run("unknown idcard number", func(t *testing.T) {
		resp := postDevice(t, ts.APIURL("/visitors/getPersonInfo"), map[string]any{
			"groupId":   device.GroupID,
			"deviceKey": device.DeviceKey,
			"idcardNum": "0000000000000000",
		})
		defer resp.Body.Close()

		testutil.AssertDeviceFailure(t, resp, http.StatusNotFound, "Person not found")
	})

	t.Run("unknown device key", func(t *testing.T) {
		resp := postDevice(t, ts.APIURL("/visitors/getPersonInfo"), map[string]any{
			"groupId":   device.GroupID,
			"deviceKey": "no-such-device",
			"idcardNum": visitor.IdcardNum,
		})
		defer resp.Body.Close()

		testutil.AssertDeviceFailure(t, resp, http.StatusBadRequest, "Invalid deviceKey")
	})

	t.Run("missing idcardNum", func(t *testing.T) {
		resp := postDevice(t, ts.APIURL("/visitors/getPersonInfo"), map[string]any{
			"groupId":   device.GroupID,
			"deviceKey": device.DeviceKey,
		})
		defer resp.Body.Close()

		testutil.AssertDeviceFailure(t, resp, http.StatusBadRequest, "Missing required parameters")
	})
}
