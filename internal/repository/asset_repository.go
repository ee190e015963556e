package repository

import (
	"database/sql"
	"fmt"

	"github.com/finverde/Family-Finance-Backend/internal/model"
)

// AssetRepository provides data access methods for the asset collections:
// investments, real estate, vehicles, exotic assets and bank accounts.
type AssetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new AssetRepository with the provided database connection.
func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// GetInvestments retrieves all investments for an owner.
func (r *AssetRepository) GetInvestments(ownerID string) ([]model.Investment, error) {
	query := `
          SELECT id, owner_id, name, type, amount, quantity, current_price, current_value,
                 purchase_price, dividend_yield, monthly_income, purchase_date, created_at
          FROM investments
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}

	for rows.Next() {
		var i model.Investment

		err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Name,
			&i.Type,
			&i.Amount,
			&i.Quantity,
			&i.CurrentPrice,
			&i.CurrentValue,
			&i.PurchasePrice,
			&i.DividendYield,
			&i.MonthlyIncome,
			&i.PurchaseDate,
			&i.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investments table results: %w", err)
		}

		investments = append(investments, i)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investments table: %w", err)
	}

	return investments, nil
}

// GetRealEstate retrieves all properties for an owner.
func (r *AssetRepository) GetRealEstate(ownerID string) ([]model.RealEstate, error) {
	query := `
          SELECT id, owner_id, name, property_type, current_value, purchase_price,
                 rental_income, monthly_expenses, iptu, is_rented, purchase_date, created_at
          FROM real_estate
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query real_estate table: %w", err)
	}
	defer rows.Close()

	properties := []model.RealEstate{}

	for rows.Next() {
		var p model.RealEstate

		err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Name,
			&p.PropertyType,
			&p.CurrentValue,
			&p.PurchasePrice,
			&p.RentalIncome,
			&p.MonthlyExpenses,
			&p.IPTU,
			&p.IsRented,
			&p.PurchaseDate,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan real_estate table results: %w", err)
		}

		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating real_estate table: %w", err)
	}

	return properties, nil
}

// GetVehicles retrieves all vehicles for an owner.
func (r *AssetRepository) GetVehicles(ownerID string) ([]model.Vehicle, error) {
	query := `
          SELECT id, owner_id, name, type, current_value, purchase_price,
                 monthly_expenses, depreciation, ipva, purchase_date, created_at
          FROM vehicles
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles table: %w", err)
	}
	defer rows.Close()

	vehicles := []model.Vehicle{}

	for rows.Next() {
		var v model.Vehicle

		err := rows.Scan(
			&v.ID,
			&v.OwnerID,
			&v.Name,
			&v.Type,
			&v.CurrentValue,
			&v.PurchasePrice,
			&v.MonthlyExpenses,
			&v.Depreciation,
			&v.IPVA,
			&v.PurchaseDate,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicles table results: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicles table: %w", err)
	}

	return vehicles, nil
}

// GetExoticAssets retrieves all exotic assets for an owner.
func (r *AssetRepository) GetExoticAssets(ownerID string) ([]model.ExoticAsset, error) {
	query := `
          SELECT id, owner_id, name, type, current_value, purchase_price, purchase_date, created_at
          FROM exotic_assets
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exotic_assets table: %w", err)
	}
	defer rows.Close()

	assets := []model.ExoticAsset{}

	for rows.Next() {
		var a model.ExoticAsset

		err := rows.Scan(
			&a.ID,
			&a.OwnerID,
			&a.Name,
			&a.Type,
			&a.CurrentValue,
			&a.PurchasePrice,
			&a.PurchaseDate,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exotic_assets table results: %w", err)
		}

		assets = append(assets, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exotic_assets table: %w", err)
	}

	return assets, nil
}

// GetBankAccounts retrieves all bank accounts for an owner.
func (r *AssetRepository) GetBankAccounts(ownerID string) ([]model.BankAccount, error) {
	query := `
          SELECT id, owner_id, name, balance, created_at
          FROM bank_accounts
          WHERE owner_id = ?
      `

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank_accounts table: %w", err)
	}
	defer rows.Close()

	accounts := []model.BankAccount{}

	for rows.Next() {
		var a model.BankAccount

		err := rows.Scan(
			&a.ID,
			&a.OwnerID,
			&a.Name,
			&a.Balance,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank_accounts table results: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank_accounts table: %w", err)
	}

	return accounts, nil
}
