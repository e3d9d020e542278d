package db_test

import (
	"context"
	"database/sql"

	"txlens/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

func openMock() (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	mockDb, mock, err := sqlmock.New()
	Expect(err).NotTo(HaveOccurred())

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	Expect(err).NotTo(HaveOccurred())

	return mockDb, mock, gormDB
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		testDB *db.GormDB
		ctx    context.Context
	)

	BeforeEach(func() {
		var gormDB *gorm.DB
		mockDb, mock, gormDB = openMock()
		testDB = db.NewGormDB(gormDB, nil)
		ctx = context.Background()
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Seed", func() {
		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
					WithArgs("Alice", 1, "Bob", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

				mock.ExpectCommit()
			})

			It("should insert the records", func() {
				err := testDB.Seed(ctx, &[]Test{
					{ID: 1, Username: "Alice"},
					{ID: 2, Username: "Bob"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already has rows", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
			})

			It("should leave the table alone", func() {
				err := testDB.Seed(ctx, &[]Test{{ID: 1, Username: "Alice"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		It("should reject non slice records", func() {
			err := testDB.Seed(ctx, Test{})
			Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
		})
	})

	Describe("SaveToTable", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) ON CONFLICT DO NOTHING RETURNING "id"$`).
				WithArgs("Alice", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

			mock.ExpectCommit()
		})

		It("should insert while skipping existing keys", func() {
			err := testDB.SaveToTable(ctx, &[]Test{{ID: 1, Username: "Alice"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should do nothing for an empty slice", func() {
			err := testDB.SaveToTable(ctx, &[]Test{})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(ctx, "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetAllBy", func() {
		When("multiple records are found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username IN \(\$1,\$2\).*`).
					WithArgs("Alice", "Bob").
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice").
						AddRow(2, "Bob"))
			})

			It("should return all matching records", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", []string{"Alice", "Bob"}, &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Username).To(Equal("Alice"))
				Expect(results[1].Username).To(Equal("Bob"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("an error occurs during query", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username.*`).
					WithArgs("Invalid").
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.GetAllBy(ctx, "username", "Invalid", &results)
				Expect(err).To(MatchError(ContainSubstring("getting records by")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Find", func() {
		var scopes []db.Scope

		BeforeEach(func() {
			scopes = []db.Scope{
				func(tx *gorm.DB) *gorm.DB { return tx.Where("username = ?", "Alice") },
				func(tx *gorm.DB) *gorm.DB { return tx.Order("id DESC").Limit(5) },
			}
		})

		It("should apply the scopes on the primary", func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY id DESC LIMIT \$2`).
				WithArgs("Alice", 5).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(3, "Alice"))

			var results []Test
			err := testDB.Find(ctx, false, &results, scopes...)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(Equal([]Test{{ID: 3, Username: "Alice"}}))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})

		It("should wrap query errors", func() {
			mock.ExpectQuery(`SELECT \* FROM "tests"`).WillReturnError(sql.ErrConnDone)

			var results []Test
			err := testDB.Find(ctx, false, &results, scopes...)
			Expect(err).To(MatchError(sql.ErrConnDone))
		})

		When("a replica is configured", func() {
			var (
				replicaSQL  *sql.DB
				replicaMock sqlmock.Sqlmock
			)

			BeforeEach(func() {
				var primary, replica *gorm.DB
				mockDb, mock, primary = openMock()
				replicaSQL, replicaMock, replica = openMock()
				testDB = db.NewGormDB(primary, replica)
			})

			AfterEach(func() {
				replicaMock.ExpectClose()
				Expect(replicaSQL.Close()).To(Succeed())
			})

			It("should read from the replica on request", func() {
				replicaMock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(3, "Alice"))

				var results []Test
				err := testDB.Find(ctx, true, &results, scopes...)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(1))
				Expect(replicaMock.ExpectationsWereMet()).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
