package nhc

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedXML(items ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>NHC Atlantic</title>` + strings.Join(items, "") + `</channel></rss>`
}

func TestFeedSource_KeepsEntryWithHighestPercentage(t *testing.T) {
	srv := jsonServer(t, feedXML(
		`<item><title>Atlantic Tropical Weather Outlook</title><description>Disturbance 1 has a 20 percent chance of formation.</description></item>`,
		`<item><title>Atlantic Tropical Weather Outlook</title><description>Disturbance 2 now has a 60 percent chance of formation.</description></item>`,
		`<item><title>Marine forecast</title><description>Seas 3 to 5 feet.</description></item>`,
	))

	f := NewFeedSource(srv.URL, testUserAgent, 5*time.Second, testLogger())
	outlook, ok, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "60%", outlook.FormationChance)
	assert.Contains(t, outlook.OutlookText, "Disturbance 2")
}

func TestFeedSource_TruncatesLongDescriptions(t *testing.T) {
	long := "Tropical outlook: formation chance is 30 percent. " + strings.Repeat("More detail. ", 60)
	srv := jsonServer(t, feedXML(`<item><title>Outlook</title><description>`+long+`</description></item>`))

	f := NewFeedSource(srv.URL, testUserAgent, 5*time.Second, testLogger())
	outlook, ok, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.LessOrEqual(t, len(outlook.OutlookText), 403)
}

func TestFeedSource_IgnoresUnrelatedEntries(t *testing.T) {
	srv := jsonServer(t, feedXML(
		`<item><title>Surf report</title><description>Waves at 80 percent of normal height.</description></item>`,
	))

	f := NewFeedSource(srv.URL, testUserAgent, 5*time.Second, testLogger())
	_, ok, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFeedSource_MalformedXML(t *testing.T) {
	srv := jsonServer(t, `<rss><channel><item>`)

	f := NewFeedSource(srv.URL, testUserAgent, 5*time.Second, testLogger())
	_, ok, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
}
