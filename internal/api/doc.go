// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

/*
Package api provides the JSON HTTP API for the recommender.

Endpoints:

	GET  /api/v1/recommendations?mood=&genre=&favorites=
	POST /api/v1/recommendations            {"mood":"","genre":"","favorites":""}
	GET  /api/v1/genres
	GET  /api/v1/mood?text=
	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /metrics

Every JSON endpoint answers with the same envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 12}
	}

Errors set status to "error" and carry {"error": {"code", "message", "details"}}.

Recommendation requests never fail because of the catalog: an unreachable
TMDB, a missing API key or an unknown genre all produce a 200 with an empty
or unfiltered list. Only malformed input (bad JSON, oversized fields) is
rejected with 400.

Middleware stack (outermost first): RealIP, RequestID, request logging,
Recoverer, Prometheus metrics, gzip compression, CORS, and a per-IP rate
limit on the recommendation and mood endpoints.
*/
package api
