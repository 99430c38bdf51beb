package player

import (
	"database/sql"
	"fmt"
)

// LocalProfileID is the profile the terminal front-end plays under.
// The Telegram front-end uses the chat id instead.
const LocalProfileID int64 = 1

// Player is one bankroll with its lifetime record.
type Player struct {
	ID      int64
	Balance int
	Wins    int
	Losses  int
	Draws   int
	Games   int
	LastBet int
}

type Stats struct {
	ID      int64
	Balance int
	Wins    int
	Games   int
	WinRate float64
}

type Repository interface {
	GetOrCreate(id int64, startBalance, defaultBet int) (*Player, error)
	Save(player *Player) error
	GetTopByBalance(limit int) ([]Stats, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetOrCreate(id int64, startBalance, defaultBet int) (*Player, error) {
	player := &Player{ID: id}

	err := r.db.QueryRow(`
		SELECT balance, wins, losses, draws, games, last_bet
		FROM players WHERE id = ?
	`, id).Scan(
		&player.Balance, &player.Wins, &player.Losses,
		&player.Draws, &player.Games, &player.LastBet,
	)

	if err == sql.ErrNoRows {
		player.Balance = startBalance
		player.LastBet = defaultBet

		_, err = r.db.Exec(`
			INSERT INTO players (id, balance, last_bet)
			VALUES (?, ?, ?)
		`, id, player.Balance, player.LastBet)

		if err != nil {
			return nil, fmt.Errorf("failed to create player: %w", err)
		}
		return player, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}

func (r *SQLiteRepository) Save(player *Player) error {
	_, err := r.db.Exec(`
		UPDATE players SET
			balance = ?, wins = ?, losses = ?, draws = ?,
			games = ?, last_bet = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, player.Balance, player.Wins, player.Losses, player.Draws,
		player.Games, player.LastBet, player.ID)

	if err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetTopByBalance(limit int) ([]Stats, error) {
	rows, err := r.db.Query(`
		SELECT id, balance, wins, games
		FROM players
		WHERE games > 0
		ORDER BY balance DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []Stats
	for rows.Next() {
		var s Stats
		if err := rows.Scan(&s.ID, &s.Balance, &s.Wins, &s.Games); err != nil {
			return nil, err
		}
		if s.Games > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Games) * 100
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

func (p *Player) AddWin(winAmount int) {
	p.Balance += winAmount
	p.Wins++
	p.Games++
}

func (p *Player) AddLoss() {
	p.Losses++
	p.Games++
}

func (p *Player) AddDraw(betAmount int) {
	p.Balance += betAmount
	p.Draws++
	p.Games++
}

func (p *Player) PlaceBet(amount int) bool {
	if amount > p.Balance {
		return false
	}
	p.Balance -= amount
	p.LastBet = amount
	return true
}

func (p *Player) CanAfford(amount int) bool {
	return p.Balance >= amount
}

func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}
