package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barbermx/appointment-api/internal/httperr"
)

const (
	// sessão abandonada expira sozinha; nenhum write aconteceu antes do submit
	sessionTTL = 30 * time.Minute

	// reserva temporária do slot enquanto o cliente termina o fluxo;
	// apenas consultiva — a autoridade é a transação de criação
	holdTTL = 5 * time.Minute
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("booking:session:%s", sessionID)
}

func holdKey(barberID uint, date, slot string) string {
	return fmt.Sprintf("booking:hold:%d:%s:%s", barberID, date, slot)
}

// --------------------------------------------------
// Sessão
// --------------------------------------------------

func (s *Store) Save(ctx context.Context, w *Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, sessionKey(w.SessionID), b, sessionTTL).Err()
}

func (s *Store) Get(ctx context.Context, sessionID string) (*Wizard, error) {
	b, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, httperr.ErrBusiness("booking_session_not_found")
	}
	if err != nil {
		return nil, err
	}

	var w Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}

	return &w, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, sessionKey(sessionID)).Err()
}

// --------------------------------------------------
// Hold de slot (SETNX com TTL)
// --------------------------------------------------

// del só quando a sessão ainda é a dona: sem isso, um release atrasado
// derrubaria o hold que outra sessão acabou de pegar
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

func (s *Store) HoldSlot(
	ctx context.Context,
	barberID uint,
	date string,
	slot string,
	sessionID string,
) (bool, error) {
	key := holdKey(barberID, date, slot)

	ok, err := s.rdb.SetNX(ctx, key, sessionID, holdTTL).Result()
	if err != nil || ok {
		return ok, err
	}

	// hold já existe; se for desta sessão (voltou e escolheu o mesmo
	// horário), renova o TTL em vez de rejeitar o próprio dono
	owner, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		// expirou entre o SETNX e o GET; tenta uma vez mais
		return s.rdb.SetNX(ctx, key, sessionID, holdTTL).Result()
	}
	if err != nil {
		return false, err
	}

	if owner != sessionID {
		return false, nil
	}

	return true, s.rdb.Set(ctx, key, sessionID, holdTTL).Err()
}

func (s *Store) ReleaseSlot(
	ctx context.Context,
	barberID uint,
	date string,
	slot string,
	sessionID string,
) error {
	return releaseScript.Run(
		ctx,
		s.rdb,
		[]string{holdKey(barberID, date, slot)},
		sessionID,
	).Err()
}
