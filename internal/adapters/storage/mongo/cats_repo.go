package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cat-map-api/internal/domain/cats"
)

const catsCollection = "cats"

type CatsRepo struct {
	coll *mongo.Collection
}

func NewCatsRepo(db *mongo.Database) *CatsRepo {
	return &CatsRepo{coll: db.Collection(catsCollection)}
}

// catDoc es el documento persistido. Location va como GeoJSON Point
// para que funcione el índice 2dsphere.
type catDoc struct {
	ID        string     `bson:"_id"`
	Owner     string     `bson:"owner"`
	Name      string     `bson:"name"`
	Breed     string     `bson:"breed"`
	Weight    float64    `bson:"weight"`
	Birthdate *time.Time `bson:"birthdate,omitempty"`
	Location  geoPoint   `bson:"location"`
	CreatedAt time.Time  `bson:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

type geoPoint struct {
	Type        string     `bson:"type"`
	Coordinates [2]float64 `bson:"coordinates"` // [lng, lat]
}

func (r *CatsRepo) Insert(ctx context.Context, c cats.Cat) error {
	_, err := r.coll.InsertOne(ctx, toDoc(c))
	return err
}

func (r *CatsRepo) FindAll(ctx context.Context) ([]cats.Cat, error) {
	return r.find(ctx, bson.M{})
}

func (r *CatsRepo) FindByID(ctx context.Context, id string) (cats.Cat, error) {
	var doc catDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}
	return fromDoc(doc), nil
}

func (r *CatsRepo) FindByOwner(ctx context.Context, ownerID string) ([]cats.Cat, error) {
	return r.find(ctx, bson.M{"owner": ownerID})
}

func (r *CatsRepo) FindWithin(ctx context.Context, bounds cats.Polygon) ([]cats.Cat, error) {
	ring := make([][2]float64, 0, len(bounds.Ring))
	for _, p := range bounds.Ring {
		ring = append(ring, [2]float64{p.Lng, p.Lat})
	}

	return r.find(ctx, bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$geometry": bson.M{
					"type":        "Polygon",
					"coordinates": [][][2]float64{ring},
				},
			},
		},
	})
}

func (r *CatsRepo) FindOneAndUpdate(ctx context.Context, id, ownerID string, p cats.Patch) (cats.Cat, error) {
	// Predicado dual: autorización y update en una sola operación atómica.
	return r.findOneAndUpdate(ctx, bson.M{"_id": id, "owner": ownerID}, p)
}

func (r *CatsRepo) FindOneAndDelete(ctx context.Context, id, ownerID string) (cats.Cat, error) {
	return r.findOneAndDelete(ctx, bson.M{"_id": id, "owner": ownerID})
}

func (r *CatsRepo) FindByIDAndUpdate(ctx context.Context, id string, p cats.Patch) (cats.Cat, error) {
	return r.findOneAndUpdate(ctx, bson.M{"_id": id}, p)
}

func (r *CatsRepo) FindByIDAndDelete(ctx context.Context, id string) (cats.Cat, error) {
	return r.findOneAndDelete(ctx, bson.M{"_id": id})
}

func (r *CatsRepo) find(ctx context.Context, filter bson.M) ([]cats.Cat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []catDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]cats.Cat, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromDoc(d))
	}
	return out, nil
}

func (r *CatsRepo) findOneAndUpdate(ctx context.Context, filter bson.M, p cats.Patch) (cats.Cat, error) {
	set := bson.M{"updated_at": time.Now()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Breed != nil {
		set["breed"] = *p.Breed
	}
	if p.Weight != nil {
		set["weight"] = *p.Weight
	}
	if p.Birthdate != nil {
		set["birthdate"] = *p.Birthdate
	}
	if p.Location != nil {
		set["location"] = geoPoint{
			Type:        "Point",
			Coordinates: [2]float64{p.Location.Lng, p.Location.Lat},
		}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc catDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}
	return fromDoc(doc), nil
}

func (r *CatsRepo) findOneAndDelete(ctx context.Context, filter bson.M) (cats.Cat, error) {
	var doc catDoc
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}
	return fromDoc(doc), nil
}

func toDoc(c cats.Cat) catDoc {
	return catDoc{
		ID:        c.ID,
		Owner:     c.Owner,
		Name:      c.Name,
		Breed:     c.Breed,
		Weight:    c.Weight,
		Birthdate: c.Birthdate,
		Location: geoPoint{
			Type:        "Point",
			Coordinates: [2]float64{c.Location.Lng, c.Location.Lat},
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func fromDoc(d catDoc) cats.Cat {
	return cats.Cat{
		ID:        d.ID,
		Owner:     d.Owner,
		Name:      d.Name,
		Breed:     d.Breed,
		Weight:    d.Weight,
		Birthdate: d.Birthdate,
		Location: cats.Point{
			Lng: d.Location.Coordinates[0],
			Lat: d.Location.Coordinates[1],
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
