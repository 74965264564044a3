package workers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/careerpath/backend/internal/models"
	mongorepo "github.com/careerpath/backend/internal/repositories/mongo"
)

// DefaultStream is the Redis stream recommend events are published to.
const DefaultStream = "recommendations:stream"

// QueryLogWorkerPool drains recommendation events from a Redis stream
// into the Mongo query log, keeping logging off the request path.
type QueryLogWorkerPool struct {
	Redis      *redis.Client
	Logs       mongorepo.QueryLogRepository
	NumWorkers int

	Logger *logrus.Logger

	Stream         string
	Group          string
	ConsumerPrefix string
}

func (p *QueryLogWorkerPool) Start(ctx context.Context) error {
	if p.Redis == nil || p.Logs == nil {
		return errors.New("QueryLogWorkerPool missing dependency: Redis and Logs must be set")
	}
	if p.Stream == "" {
		p.Stream = DefaultStream
	}
	if p.Group == "" {
		p.Group = "querylog-workers"
	}
	if p.ConsumerPrefix == "" {
		p.ConsumerPrefix = "c"
	}
	if p.NumWorkers <= 0 {
		p.NumWorkers = 2
	}
	if p.Logger == nil {
		p.Logger = logrus.New()
	}

	_ = p.Redis.XGroupCreateMkStream(ctx, p.Stream, p.Group, "0").Err() // ignore BUSYGROUP

	for i := 0; i < p.NumWorkers; i++ {
		consumer := p.ConsumerPrefix + "-" + strconv.Itoa(i+1)
		go p.runConsumer(ctx, consumer)
	}
	return nil
}

func (p *QueryLogWorkerPool) runConsumer(ctx context.Context, consumer string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := p.Redis.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    p.Group,
			Consumer: consumer,
			Streams:  []string{p.Stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()

		if err != nil {
			if err == redis.Nil {
				continue
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				p.handleMsg(ctx, msg)
				_ = p.Redis.XAck(ctx, p.Stream, p.Group, msg.ID).Err()
			}
		}
	}
}

func (p *QueryLogWorkerPool) handleMsg(ctx context.Context, msg redis.XMessage) {
	getStr := func(k string) string {
		v, ok := msg.Values[k]
		if !ok || v == nil {
			return ""
		}
		s, _ := v.(string)
		return s
	}

	entry := models.QueryLog{
		ID:             getStr("log_id"),
		RequestID:      getStr("request_id"),
		Skills:         getStr("skills"),
		Interests:      getStr("interests"),
		EducationLevel: getStr("education_level"),
	}
	entry.ExperienceYears, _ = strconv.Atoi(getStr("experience_years"))
	_ = json.Unmarshal([]byte(getStr("top_career_ids")), &entry.TopCareerIDs)
	_ = json.Unmarshal([]byte(getStr("top_scores")), &entry.TopScores)

	if ts := getStr("created_at"); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			entry.CreatedAt = t
		}
	}

	if err := p.Logs.Insert(ctx, &entry); err != nil {
		p.Logger.WithFields(logrus.Fields{
			"msg_id": msg.ID,
			"log_id": entry.ID,
		}).WithError(err).Warn("failed to persist query log")
	}
}
