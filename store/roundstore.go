package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/letters"
	uuid "github.com/satori/go.uuid"
)

var ErrUnknownRoundID = errors.New("unknown round ID")

// NewRoundID returns an identifier for a new round.
func NewRoundID() string {
	return uuid.NewV4().String()
}

// RoundStore keeps track of the rounds an application has running.
type RoundStore interface {
	Rounds() map[string]letters.Game
	FindRound(id string) (letters.Game, error)
	AddRound(id string, game letters.Game) error
}

// InMemoryRoundStore maps round ids to games. Safe for concurrent use.
type InMemoryRoundStore struct {
	mu     sync.Mutex
	rounds map[string]letters.Game
}

// NewInMemoryRoundStore constructs an InMemoryRoundStore
func NewInMemoryRoundStore() *InMemoryRoundStore {
	return &InMemoryRoundStore{
		rounds: map[string]letters.Game{},
	}
}

// Rounds returns a snapshot of the registered rounds.
func (s *InMemoryRoundStore) Rounds() map[string]letters.Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	rounds := make(map[string]letters.Game, len(s.rounds))
	for id, game := range s.rounds {
		rounds[id] = game
	}
	return rounds
}

func (s *InMemoryRoundStore) FindRound(id string) (letters.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.rounds[id]
	if !ok {
		return nil, ErrUnknownRoundID
	}
	return game, nil
}

func (s *InMemoryRoundStore) AddRound(id string, game letters.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rounds[id]; exists {
		return fmt.Errorf("round with id %s already exists", id)
	}

	s.rounds[id] = game
	return nil
}
