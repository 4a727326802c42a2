package model

import (
	"sync"

	"github.com/m-mizutani/repopeek/pkg/domain/types"
)

// Session holds UI state shared by a renderer and handlers: current token and expanded repositories.
type Session struct {
	mutex    sync.RWMutex
	token    types.GitHubToken
	expanded map[types.RepoID]struct{}
}

func NewSession(token types.GitHubToken) *Session {
	return &Session{
		token:    token,
		expanded: make(map[types.RepoID]struct{}),
	}
}

func (x *Session) Token() types.GitHubToken {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.token
}

func (x *Session) SetToken(token types.GitHubToken) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.token = token
}

// Toggle flips expanded state of the repository and returns new state
func (x *Session) Toggle(id types.RepoID) bool {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	if _, ok := x.expanded[id]; ok {
		delete(x.expanded, id)
		return false
	}
	x.expanded[id] = struct{}{}
	return true
}

func (x *Session) Expand(ids ...types.RepoID) {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	for _, id := range ids {
		x.expanded[id] = struct{}{}
	}
}

func (x *Session) IsExpanded(id types.RepoID) bool {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	_, ok := x.expanded[id]
	return ok
}

// Reset collapses all repositories
func (x *Session) Reset() {
	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.expanded = make(map[types.RepoID]struct{})
}
