package restyutil

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	lock     sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.messages[id] = contents
}

func TestRedactURL(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{
			in:       "https://api.example/account/characters.xml.aspx?keyId=1&vCode=abc",
			expected: "https://api.example/account/characters.xml.aspx?keyId=1&vCode=REDACTED",
		},
		{
			in:       "https://api.example/server/serverstatus.xml.aspx",
			expected: "https://api.example/server/serverstatus.xml.aspx",
		},
		{
			in:       "https://api.example/eve/typeName.xml.aspx?ids=1%2C2",
			expected: "https://api.example/eve/typeName.xml.aspx?ids=1%2C2",
		},
		{
			in:       "://not a url",
			expected: "://not a url",
		},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, RedactURL(test.in))
	}
}

func TestFormatHeadersIsSorted(t *testing.T) {
	headers := http.Header{}
	headers.Add("B", "2")
	headers.Add("A", "1")
	headers.Add("A", "3")

	require.Equal(t, "A: 1\nA: 3\nB: 2", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(http.Header{}))
}

func TestInstrumentClientWritesExchanges(t *testing.T) {
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(previous)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Test", "yes")
		fmt.Fprint(w, "<eveapi/>")
	}))
	defer srv.Close()

	out := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, nil, out)

	_, err := client.R().
		SetContext(context.Background()).
		Get(srv.URL + "/account/characters.xml.aspx?keyId=1&vCode=hunter2")
	require.NoError(t, err)

	require.Len(t, out.messages, 1)
	message := out.messages["1"]
	require.Contains(t, message, "---- REQUEST ----")
	require.Contains(t, message, "vCode=REDACTED")
	require.NotContains(t, message, "hunter2")
	require.Contains(t, message, "X-Test: yes")
	require.Contains(t, message, "<eveapi/>")
}

func TestFilesystemOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")
	require.NoError(t, os.MkdirAll(dir, 0777))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.txt"), []byte("old"), 0600))

	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)
	out.Write("1", "contents")

	_, err = os.Stat(filepath.Join(dir, "stale.txt"))
	require.True(t, os.IsNotExist(err))

	contents, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))
}
