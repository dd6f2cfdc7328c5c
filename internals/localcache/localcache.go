// Package localcache guarda cópias-sombra dos registros por slot
// (entidade, mantenedora) para quando o banco remoto está ausente ou
// indisponível. Cada slot é um arquivo com a lista serializada em JSON.
package localcache

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const keySep = "__"

// Key monta a chave do slot de uma entidade para uma mantenedora.
func Key(entity, ownerID string) string { return entity + keySep + ownerID }

// Store é um KV simples com seção crítica por chave: sequências
// ler-alterar-gravar contra o mesmo slot são serializadas, então gravações
// concorrentes de mantenedoras/entidades diferentes não se perdem.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(dir string) *Store {
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get devolve o conteúdo bruto do slot. Slot inexistente = nil, sem erro.
func (s *Store) Get(key string) ([]byte, error) {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()
	return s.read(key)
}

// Set grava o conteúdo bruto do slot.
func (s *Store) Set(key string, value []byte) error {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()
	return s.write(key, value)
}

// Update roda fn com o lock da chave em mãos: fn recebe o conteúdo atual e
// devolve o novo. Devolver nil mantém o slot como está.
func (s *Store) Update(key string, fn func(current []byte) ([]byte, error)) error {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	cur, err := s.read(key)
	if err != nil {
		return err
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	if next == nil {
		return nil
	}
	return s.write(key, next)
}

// Keys lista as chaves existentes com o prefixo dado (tipicamente
// "<entidade>__"), usado pela varredura total do delete.
func (s *Store) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".json")
		if name == e.Name() {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			keys = append(keys, name)
		}
	}
	return keys, nil
}

func (s *Store) read(key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) write(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0o644)
}
