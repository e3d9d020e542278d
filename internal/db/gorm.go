package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Scope narrows a query, see gorm.DB.Scopes.
type Scope = func(*gorm.DB) *gorm.DB

// GormDB runs queries against a primary database and, when configured, a read replica.
type GormDB struct {
	primary *gorm.DB
	replica *gorm.DB
}

// NewGormDB wraps already opened connections. A nil replica routes all reads to primary.
func NewGormDB(primary, replica *gorm.DB) *GormDB {
	if replica == nil {
		replica = primary
	}
	return &GormDB{
		primary: primary,
		replica: replica,
	}
}

func NewPostgresDB(dsn, replicaDSN string) (*GormDB, error) {
	primary, err := open(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var replica *gorm.DB
	if replicaDSN != "" {
		replica, err = open(replicaDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to replica database: %w", err)
		}
	}

	return NewGormDB(primary, replica), nil
}

func open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// transactions may reference addresses that are not indexed yet
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}

func (g *GormDB) MigrateTable(tbl ...any) error {
	err := g.primary.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts records only when their table is still empty.
func (g *GormDB) Seed(ctx context.Context, records any) error {
	slice, err := sliceOf(records)
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	var count int64
	model := slice.Index(0).Interface()
	if err := g.primary.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := g.primary.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// SaveToTable inserts records, skipping the ones whose primary key already exists.
func (g *GormDB) SaveToTable(ctx context.Context, records any) error {
	slice, err := sliceOf(records)
	if err != nil {
		return err
	}
	if slice.Len() == 0 {
		return nil
	}

	err = g.primary.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (g *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := g.primary.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (g *GormDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := g.primary.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// Find loads the rows selected by scopes into dest, from the replica when useReplica is set.
func (g *GormDB) Find(ctx context.Context, useReplica bool, dest any, scopes ...Scope) error {
	conn := g.primary
	if useReplica {
		conn = g.replica
	}

	if err := conn.WithContext(ctx).Scopes(scopes...).Find(dest).Error; err != nil {
		return fmt.Errorf("find records: %w", err)
	}
	return nil
}

func sliceOf(records any) (reflect.Value, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return reflect.Value{}, fmt.Errorf("records type must be pointer to a slice: %T", records)
	}
	return v.Elem(), nil
}
