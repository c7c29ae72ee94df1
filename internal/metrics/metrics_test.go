// Letterboxd Stats - Film Club Statistics, Superlatives and Recommendations
// Copyright 2026 LetterBoxd-Stats
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/LetterBoxd-Stats/letterboxd-api

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordStatsPass(t *testing.T) {
	before := testutil.ToFloat64(StatsPassTotal.WithLabelValues("success"))
	RecordStatsPass(true, 2*time.Second)
	after := testutil.ToFloat64(StatsPassTotal.WithLabelValues("success"))
	if after != before+1 {
		t.Errorf("success counter = %v, want %v", after, before+1)
	}
	if testutil.ToFloat64(StatsPassLastSuccess) == 0 {
		t.Error("last success timestamp not set")
	}

	beforeFail := testutil.ToFloat64(StatsPassTotal.WithLabelValues("failure"))
	RecordStatsPass(false, time.Second)
	if got := testutil.ToFloat64(StatsPassTotal.WithLabelValues("failure")); got != beforeFail+1 {
		t.Errorf("failure counter = %v, want %v", got, beforeFail+1)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/users", "200"))
	RecordAPIRequest("GET", "/api/v1/users", 200, 50*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/users", "200"))
	if after != before+1 {
		t.Errorf("request counter = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("active gauge = %v, want %v", got, base+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("active gauge = %v, want %v", got, base)
	}
}
