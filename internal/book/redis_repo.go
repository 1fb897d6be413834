package book

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepo stores each book as a JSON document and keeps insertion order in a
// sorted set scored by a monotonic sequence.
type RedisRepo struct {
	rdb     redis.UniversalClient
	prefix  string
	timeout time.Duration
}

func NewRedisRepo(rdb redis.UniversalClient, prefix string, timeout time.Duration) *RedisRepo {
	return &RedisRepo{rdb: rdb, prefix: prefix, timeout: timeout}
}

func (r *RedisRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *RedisRepo) docKey(id string) string { return r.prefix + ":book:" + id }
func (r *RedisRepo) indexKey() string        { return r.prefix + ":books" }
func (r *RedisRepo) seqKey() string          { return r.prefix + ":seq" }

func (r *RedisRepo) Insert(ctx context.Context, b *Book) (string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	doc := clone(*b)
	doc.ID = NewID()
	doc.CommentCount = len(doc.Comments)
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	seq, err := r.rdb.Incr(timeoutCtx, r.seqKey()).Result()
	if err != nil {
		return "", err
	}
	_, err = r.rdb.TxPipelined(timeoutCtx, func(pipe redis.Pipeliner) error {
		pipe.Set(timeoutCtx, r.docKey(doc.ID), payload, 0)
		pipe.ZAdd(timeoutCtx, r.indexKey(), redis.Z{Score: float64(seq), Member: doc.ID})
		return nil
	})
	if err != nil {
		return "", err
	}

	*b = doc
	return doc.ID, nil
}

func (r *RedisRepo) FindAll(ctx context.Context) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	ids, err := r.rdb.ZRange(timeoutCtx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := []Book{}
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	vals, err := r.rdb.MGet(timeoutCtx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// removed between ZRANGE and MGET
			continue
		}
		b, err := decodeDoc(s)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *RedisRepo) FindByID(ctx context.Context, id string) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	s, err := r.rdb.Get(timeoutCtx, r.docKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return decodeDoc(s)
}

// Save replaces the document of an existing book.
func (r *RedisRepo) Save(ctx context.Context, b Book) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b.Comments = nonNil(b.Comments)
	b.CommentCount = len(b.Comments)
	payload, err := json.Marshal(b)
	if err != nil {
		return err
	}
	ok, err := r.rdb.SetXX(timeoutCtx, r.docKey(b.ID), payload, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (r *RedisRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(timeoutCtx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(timeoutCtx, r.docKey(id))
		pipe.ZRem(timeoutCtx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return false, err
	}
	return del.Val() > 0, nil
}

// deleteAllScript drops every indexed document and the index in one atomic
// step, so a book inserted concurrently is either removed with the rest or
// survives with its index entry. Documents are deleted in batches to stay under
// the Lua unpack limit.
var deleteAllScript = redis.NewScript(`
local ids = redis.call('ZRANGE', KEYS[1], 0, -1)
local removed = 0
for i = 1, #ids, 500 do
	local batch = {}
	for j = i, math.min(i + 499, #ids) do
		batch[#batch + 1] = ARGV[1] .. ids[j]
	end
	removed = removed + redis.call('DEL', unpack(batch))
end
redis.call('DEL', KEYS[1])
return removed
`)

func (r *RedisRepo) DeleteAll(ctx context.Context) (int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return deleteAllScript.Run(timeoutCtx, r.rdb, []string{r.indexKey()}, r.docKey("")).Int64()
}

func (r *RedisRepo) ValidID(id string) bool { return ValidID(id) }

func (r *RedisRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.rdb.Ping(timeoutCtx).Err()
}

func decodeDoc(s string) (Book, error) {
	var b Book
	if err := json.Unmarshal([]byte(s), &b); err != nil {
		return Book{}, err
	}
	b.Comments = nonNil(b.Comments)
	return b, nil
}
