package cache_test

import (
	"context"
	"errors"
	"hotelbook/infras/otel/mocks"
	"hotelbook/shared/cache"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hotelEntry struct {
	Name string `json:"name"`
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())
	ctx := context.Background()

	mock.ExpectSet("hotel:get:1", []byte(`{"name":"Ubud"}`), 60*time.Second).SetVal("OK")
	require.NoError(t, redisCache.Save(ctx, "hotel:get:1", hotelEntry{Name: "Ubud"}, 60))

	mock.ExpectGet("hotel:get:1").SetVal(`{"name":"Ubud"}`)

	var entry hotelEntry
	require.NoError(t, redisCache.Get(ctx, "hotel:get:1", &entry))
	assert.Equal(t, "Ubud", entry.Name)

	mock.ExpectGet("report:csv").SetVal("a,b\n1,2\n")

	var raw string
	require.NoError(t, redisCache.Get(ctx, "report:csv", &raw))
	assert.Equal(t, "a,b\n1,2\n", raw)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectGet("hotel:get:missing").RedisNil()

	var entry hotelEntry
	err := redisCache.Get(context.Background(), "hotel:get:missing", &entry)

	assert.True(t, errors.Is(err, cache.Nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetCorrupt(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectGet("hotel:get:1").SetVal("{not json")

	var entry hotelEntry
	assert.Error(t, redisCache.Get(context.Background(), "hotel:get:1", &entry))
}

func TestRedisCache_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectDel("booking:get:1").SetVal(1)
	assert.NoError(t, redisCache.Delete(context.Background(), "booking:get:1"))

	mock.ExpectDel("booking:get:2").SetErr(errors.New("connection reset"))
	assert.Error(t, redisCache.Delete(context.Background(), "booking:get:2"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_Clear(t *testing.T) {
	client, mock := redismock.NewClientMock()
	redisCache := cache.NewRedisCache(client, mocks.NewOtel())

	mock.ExpectScan(0, "booking:gets*", 0).SetVal([]string{"booking:gets:1", "booking:gets:2"}, 0)
	mock.ExpectDel("booking:gets:1").SetVal(1)
	mock.ExpectDel("booking:gets:2").SetVal(1)

	assert.NoError(t, redisCache.Clear(context.Background(), "booking:gets*"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
