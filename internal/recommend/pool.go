// Rilijin's Movie Recommender - Mood-Aware Movie Recommendations
// Copyright 2026 lijjinn
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/lijjinn/Rilijin-s-Movie-Recommender

package recommend

import "github.com/lijjinn/Rilijin-s-Movie-Recommender/internal/catalog"

// Pool is an insertion-ordered set of candidate movies keyed by ID.
// It never holds two movies with the same ID. Not safe for concurrent use.
type Pool struct {
	order []int64
	byID  map[int64]catalog.Movie
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{byID: make(map[int64]catalog.Movie)}
}

// Add inserts m unless a movie with the same ID is already present.
// Movies without a positive ID are ignored. It reports whether m was added.
//
//nolint:gocritic // Movie is passed by value to keep callers simple
func (p *Pool) Add(m catalog.Movie) bool {
	if m.ID <= 0 {
		return false
	}
	if _, exists := p.byID[m.ID]; exists {
		return false
	}
	p.byID[m.ID] = m
	p.order = append(p.order, m.ID)
	return true
}

// AddAll adds each movie in order and returns how many were new.
func (p *Pool) AddAll(movies []catalog.Movie) int {
	added := 0
	for i := range movies {
		if p.Add(movies[i]) {
			added++
		}
	}
	return added
}

// Len returns the number of movies in the pool.
func (p *Pool) Len() int {
	return len(p.order)
}

// Contains reports whether id is in the pool.
func (p *Pool) Contains(id int64) bool {
	_, ok := p.byID[id]
	return ok
}

// Truncate drops every movie after the first n.
func (p *Pool) Truncate(n int) {
	if n < 0 || n >= len(p.order) {
		return
	}
	for _, id := range p.order[n:] {
		delete(p.byID, id)
	}
	p.order = p.order[:n]
}

// Movies returns the movies in insertion order.
func (p *Pool) Movies() []catalog.Movie {
	movies := make([]catalog.Movie, 0, len(p.order))
	for _, id := range p.order {
		movies = append(movies, p.byID[id])
	}
	return movies
}
