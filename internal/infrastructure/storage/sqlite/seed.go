package sqlite

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Demo data shape: 20 seats across two areas, 50 employees, usage logs
// spread over the first five months of 2025.
const (
	seedSeats     = 20
	seedEmployees = 50
	seedOpenLogs  = 5
)

var (
	seedSurnames = []string{"田中", "佐藤", "鈴木", "高橋", "渡辺", "伊藤", "山本", "中村", "小林", "加藤"}
	seedGiven    = []string{"一郎", "二郎", "花子", "太郎", "美咲"}
	seedDepts    = []string{"営業部", "開発部", "総務部", "人事部", "経理部"}

	seedStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	seedEnd   = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
)

// Seed populates the database with demo data: seats and employees are
// inserted idempotently, then `logs` closed usage intervals plus a
// handful of open ones are appended.
func (r *Repository) Seed(ctx context.Context, logs int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 1; i <= seedSeats; i++ {
		area := "North"
		if i > seedSeats/2 {
			area = "South"
		}
		seatType := "Standard"
		if i%7 == 0 {
			seatType = "Booth"
		}
		label := fmt.Sprintf("A-%02d", i)
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO Seat (Label, Area, SeatType) VALUES (?, ?, ?)`,
			label, area, seatType); err != nil {
			return fmt.Errorf("seeding seat %s: %w", label, err)
		}
	}

	for i := 0; i < seedEmployees; i++ {
		code := fmt.Sprintf("E%d", 10001+i)
		name := seedSurnames[i%len(seedSurnames)] + seedGiven[i/len(seedSurnames)%len(seedGiven)]
		dept := seedDepts[i%len(seedDepts)]
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO Employee (EmpCode, Name, Dept) VALUES (?, ?, ?)`,
			code, name, dept); err != nil {
			return fmt.Errorf("seeding employee %s: %w", code, err)
		}
	}

	days := int(seedEnd.Sub(seedStart).Hours() / 24)
	for i := 0; i < logs; i++ {
		day := seedStart.AddDate(0, 0, rng.Intn(days))
		checkIn := day.Add(9*time.Hour + time.Duration(rng.Intn(61))*time.Minute)
		checkOut := checkIn.Add(time.Duration(6+rng.Intn(4))*time.Hour + time.Duration(rng.Intn(60))*time.Minute)

		seatID := 1 + rng.Intn(seedSeats)
		empCode := fmt.Sprintf("E%d", 10001+rng.Intn(seedEmployees))
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO SeatLog (SeatId, EmpCode, CheckIn, CheckOut) VALUES (?, ?, ?, ?)`,
			seatID, empCode, checkIn, checkOut); err != nil {
			return fmt.Errorf("seeding log: %w", err)
		}
	}

	// Open intervals on distinct seats so the seat map has occupants.
	now := time.Now().UTC()
	for i := 0; i < seedOpenLogs; i++ {
		seatID := i*3 + 1
		empCode := fmt.Sprintf("E%d", 10001+i)
		checkIn := now.Add(-time.Duration(1+rng.Intn(3)) * time.Hour)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO SeatLog (SeatId, EmpCode, CheckIn, CheckOut) VALUES (?, ?, ?, NULL)`,
			seatID, empCode, checkIn); err != nil {
			return fmt.Errorf("seeding open log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
