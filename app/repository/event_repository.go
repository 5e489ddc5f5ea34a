package repository

import (
	"context"
	"fmt"

	"thesis-defense-backend/app/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventRepository menangani pembacaan riwayat status (collection ujian_events)
// untuk timeline notifikasi. Penulisan event dilakukan UjianRepository bersama
// penulisan statusnya; repository ini hanya membaca.
type EventRepository interface {
	// FindUntukAktor mengambil 1 halaman event yang boleh dilihat actor,
	// terbaru lebih dulu. page 1-indexed; mengembalikan juga total event
	// yang visible untuk menghitung hasMore.
	FindUntukAktor(ctx context.Context, actor model.Actor, page, pageSize int) ([]model.UjianEvent, int64, error)
}

type eventRepository struct {
	mongo *mongo.Database
}

// NewEventRepository membuat instance baru eventRepository.
func NewEventRepository(mongoDB *mongo.Database) EventRepository {
	return &eventRepository{mongo: mongoDB}
}

func (r *eventRepository) FindUntukAktor(ctx context.Context, actor model.Actor, page, pageSize int) ([]model.UjianEvent, int64, error) {
	coll := r.mongo.Collection(KoleksiUjianEvents)
	filter := FilterEventUntukAktor(actor)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
	}
	defer cur.Close(ctx)

	events := []model.UjianEvent{}
	for cur.Next(ctx) {
		var ev model.UjianEvent
		if err := cur.Decode(&ev); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
		}
		events = append(events, ev)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", model.ErrStoreTidakTersedia, err)
	}

	return events, total, nil
}
