// Package reconcile implementa o algoritmo de mesclagem entre o banco
// remoto (autoritativo) e o cache local de contingência, uma única vez,
// genérico por entidade. Cada store concreto é uma instanciação fina.
package reconcile

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"quadroescolar_backend/internals/constants"
	"quadroescolar_backend/internals/localcache"
)

// Remote é o adaptador do banco autoritativo para uma entidade. Toda leitura
// é escopada pela mantenedora (fora o valor reservado); FindByID devolve
// (nil, nil) quando o registro não existe na partição.
type Remote[T any] interface {
	ListByOwner(ctx context.Context, ownerID string) ([]T, error)
	FindByID(ctx context.Context, id, ownerID string) (*T, error)
	Upsert(ctx context.Context, row *T) error
	Delete(ctx context.Context, id string) error
}

// Store reconcilia leituras e gravações de uma entidade entre o remoto e o
// cache local particionado por mantenedora.
type Store[T any] struct {
	Entity     string
	Configured func() bool
	Remote     Remote[T]
	Cache      *localcache.Store

	ID    func(*T) string
	SetID func(*T, string)
	Owner func(*T) string
}

/* ===================== LEITURA ===================== */

// GetAll devolve os registros da mantenedora (ou de todas, para o valor
// reservado). Remoto indisponível ou não configurado degrada para o cache.
// Nunca devolve erro: falhas de leitura são registradas em log apenas.
func (s *Store[T]) GetAll(ctx context.Context, ownerID string) []T {
	var remoteRows []T
	remoteOK := false

	if s.Configured() {
		rows, err := s.Remote.ListByOwner(ctx, ownerID)
		if err != nil {
			log.Printf("[WARN] %s: leitura remota falhou, usando cache: %v", s.Entity, err)
		} else {
			remoteRows, remoteOK = rows, true
		}
	}

	cacheRows := s.cacheRows(ownerID)
	if !remoteOK {
		return cacheRows
	}

	// remoto é autoritativo; anexa apenas registros que só existem no cache
	seen := make(map[string]struct{}, len(remoteRows))
	for i := range remoteRows {
		seen[s.ID(&remoteRows[i])] = struct{}{}
	}
	merged := remoteRows
	for i := range cacheRows {
		if _, ok := seen[s.ID(&cacheRows[i])]; !ok {
			merged = append(merged, cacheRows[i])
		}
	}
	return merged
}

// FindByID lê o valor atualmente persistido de um registro. Com o remoto
// configurado a leitura é só remota (erro propaga, para o chamador decidir
// pular efeitos colaterais); sem remoto, vale o cache.
func (s *Store[T]) FindByID(ctx context.Context, id, ownerID string) (*T, error) {
	if s.Configured() {
		return s.Remote.FindByID(ctx, id, ownerID)
	}
	for _, row := range s.cacheRows(ownerID) {
		row := row
		if s.ID(&row) == id {
			return &row, nil
		}
	}
	return nil, nil
}

/* ===================== GRAVAÇÃO ===================== */

// Save atribui id quando ausente, tenta o upsert remoto e, em qualquer falha
// remota, grava no cache local (substitui pelo mesmo id ou anexa). O slot é
// o da mantenedora DO REGISTRO, não a do chamador: um save administrativo
// (valor reservado) precisa aparecer depois na leitura particionada da dona.
// A gravação do chamador nunca se perde; o único erro que retorna é falha de
// serialização/escrita local.
func (s *Store[T]) Save(ctx context.Context, row *T, ownerID string) error {
	if s.ID(row) == "" {
		s.SetID(row, uuid.NewString())
	}

	if s.Configured() {
		err := s.Remote.Upsert(ctx, row)
		if err == nil {
			return nil
		}
		log.Printf("[WARN] %s: upsert remoto falhou, gravando no cache: %v", s.Entity, err)
	}

	slot := ownerID
	if o := s.Owner(row); o != "" && o != constants.OwnerAll {
		slot = o
	}
	key := localcache.Key(s.Entity, slot)
	return s.Cache.Update(key, func(current []byte) ([]byte, error) {
		rows, err := s.decode(current)
		if err != nil {
			return nil, err
		}
		replaced := false
		for i := range rows {
			if s.ID(&rows[i]) == s.ID(row) {
				rows[i] = *row
				replaced = true
				break
			}
		}
		if !replaced {
			rows = append(rows, *row)
		}
		return sonic.Marshal(rows)
	})
}

// Delete remove o registro: remoto em melhor esforço (falha ignorada) e
// depois varre TODAS as partições do cache. Requisições de delete nem
// sempre carregam a mantenedora, então a varredura é total.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if s.Configured() {
		if err := s.Remote.Delete(ctx, id); err != nil {
			log.Printf("[WARN] %s: delete remoto falhou (ignorado): %v", s.Entity, err)
		}
	}

	keys, err := s.Cache.Keys(s.Entity + "__")
	if err != nil {
		return err
	}
	for _, key := range keys {
		uerr := s.Cache.Update(key, func(current []byte) ([]byte, error) {
			rows, derr := s.decode(current)
			if derr != nil {
				return nil, derr
			}
			kept := rows[:0]
			for i := range rows {
				if s.ID(&rows[i]) != id {
					kept = append(kept, rows[i])
				}
			}
			if len(kept) == len(rows) {
				return nil, nil // nada a mudar
			}
			return sonic.Marshal(kept)
		})
		if uerr != nil && err == nil {
			err = uerr
		}
	}
	return err
}

/* ===================== CACHE ===================== */

// Cached devolve apenas as linhas do cache local da mantenedora, sem tocar o
// remoto. Chamadores que já leram o remoto por conta própria usam isto para
// mesclar os registros gravados em contingência.
func (s *Store[T]) Cached(ownerID string) []T {
	return s.cacheRows(ownerID)
}

func (s *Store[T]) cacheRows(ownerID string) []T {
	if ownerID == constants.OwnerAll {
		keys, err := s.Cache.Keys(s.Entity + "__")
		if err != nil {
			log.Printf("[WARN] %s: varredura do cache falhou: %v", s.Entity, err)
			return nil
		}
		var all []T
		for _, key := range keys {
			all = append(all, s.cacheSlot(key)...)
		}
		return all
	}
	return s.cacheSlot(localcache.Key(s.Entity, ownerID))
}

func (s *Store[T]) cacheSlot(key string) []T {
	raw, err := s.Cache.Get(key)
	if err != nil {
		log.Printf("[WARN] %s: leitura do cache falhou (%s): %v", s.Entity, key, err)
		return nil
	}
	rows, err := s.decode(raw)
	if err != nil {
		log.Printf("[WARN] %s: cache corrompido (%s): %v", s.Entity, key, err)
		return nil
	}
	return rows
}

func (s *Store[T]) decode(raw []byte) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var rows []T
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
