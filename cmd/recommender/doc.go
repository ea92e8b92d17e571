// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

/*
Command recommender serves and queries mood-aware movie recommendations.

Subcommands:

	recommender serve                      run the HTTP API until SIGINT or SIGTERM
	recommender recommend --mood "..."     print recommendations as a table or JSON
	recommender mood "I feel great"        classify a mood text
	recommender genres                     list the supported genres

Configuration is read from defaults, an optional YAML file (--config or
CONFIG_PATH) and the environment. A .env file in the working directory is
loaded first when present. TMDB_API_KEY is optional: without it every
command still runs and recommendations come back empty.
*/
package main
