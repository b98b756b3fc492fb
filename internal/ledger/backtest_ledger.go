package ledger

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-sizing/internal/ledger/commission_fee"
	"github.com/rxtech-lab/argo-sizing/internal/logger"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CashFlowKind string

const (
	CashFlowInitial CashFlowKind = "INITIAL"
	CashFlowDeposit CashFlowKind = "DEPOSIT"
	CashFlowBuy     CashFlowKind = "BUY"
	CashFlowSell    CashFlowKind = "SELL"
)

// CashFlow is a single movement of cash recorded in the journal.
type CashFlow struct {
	ID        string       `csv:"id"`
	Timestamp time.Time    `csv:"timestamp"`
	Kind      CashFlowKind `csv:"kind"`
	Amount    float64      `csv:"amount"`
	Balance   float64      `csv:"balance"`
}

type holding struct {
	quantity int64
	// costBasis is the total paid for the open quantity, fees included.
	costBasis decimal.Decimal
}

// BacktestLedger is a simulated account. Cash and holdings live in memory and
// every movement is journaled to an in-memory DuckDB database.
type BacktestLedger struct {
	mu         sync.Mutex
	db         *sql.DB
	sq         squirrel.StatementBuilderType
	log        *logger.Logger
	commission commission_fee.CommissionFee
	precision  int
	cash       decimal.Decimal
	holdings   map[string]*holding
	seq        int64
}

var _ Ledger = (*BacktestLedger)(nil)

// NewBacktestLedger opens the journal and books initialCash as the opening balance.
func NewBacktestLedger(log *logger.Logger, initialCash float64, commission commission_fee.CommissionFee, precision int) (*BacktestLedger, error) {
	if initialCash < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidDeposit, "initial cash must not be negative: %f", initialCash)
	}

	if precision < 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "cash precision must not be negative: %d", precision)
	}

	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerUnavailable, "failed to open ledger database", err)
	}

	if commission == nil {
		commission = commission_fee.NewZeroCommissionFee()
	}

	l := &BacktestLedger{
		mu:         sync.Mutex{},
		db:         db,
		sq:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		log:        log,
		commission: commission,
		precision:  precision,
		cash:       decimal.Zero,
		holdings:   make(map[string]*holding),
		seq:        0,
	}

	if err := l.initialize(); err != nil {
		db.Close()

		return nil, err
	}

	opening := decimal.NewFromFloat(initialCash).Round(int32(precision))
	if err := l.insertCashFlow(l.db, time.Time{}, CashFlowInitial, opening, opening); err != nil {
		db.Close()

		return nil, err
	}

	l.cash = opening

	return l, nil
}

// initialize creates the journal tables.
func (l *BacktestLedger) initialize() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS cash_flows (
			seq BIGINT,
			id TEXT PRIMARY KEY,
			timestamp TIMESTAMP,
			kind TEXT,
			amount DOUBLE,
			balance DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerUnavailable, "failed to create cash_flows table", err)
	}

	_, err = l.db.Exec(`
		CREATE TABLE IF NOT EXISTS trades (
			seq BIGINT,
			id TEXT PRIMARY KEY,
			timestamp TIMESTAMP,
			symbol TEXT,
			side TEXT,
			quantity BIGINT,
			price DOUBLE,
			commission DOUBLE,
			stamp_tax DOUBLE,
			total_cost DOUBLE,
			cash_after DOUBLE,
			pnl DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerUnavailable, "failed to create trades table", err)
	}

	return nil
}

// CurrentCash implements Ledger.
func (l *BacktestLedger) CurrentCash() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.cash.InexactFloat64()
}

// HeldInstrumentCount implements Ledger.
func (l *BacktestLedger) HeldInstrumentCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0

	for _, h := range l.holdings {
		if h.quantity > 0 {
			count++
		}
	}

	return count
}

// TransactionCost implements Ledger. It prices a buy, rounded to the cash precision.
func (l *BacktestLedger) TransactionCost(timestamp time.Time, instrument types.Instrument, price float64, quantity int64) types.CostRecord {
	return l.cost(types.TradeSideBuy, instrument, price, quantity)
}

func (l *BacktestLedger) cost(side types.TradeSide, instrument types.Instrument, price float64, quantity int64) types.CostRecord {
	precision := int32(l.precision)
	fee := l.commission.Calculate(side, tradedAmount(instrument, price, quantity), quantity)
	commission := fee.Commission.Round(precision)
	stampTax := fee.StampTax.Round(precision)

	return types.CostRecord{
		Commission: commission.InexactFloat64(),
		StampTax:   stampTax.InexactFloat64(),
		Total:      commission.Add(stampTax).InexactFloat64(),
	}
}

func tradedAmount(instrument types.Instrument, price float64, quantity int64) decimal.Decimal {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(quantity)).
		Mul(decimal.NewFromFloat(instrument.ContractMultiplier))
}

// CashPrecision implements Ledger.
func (l *BacktestLedger) CashPrecision() int {
	return l.precision
}

// DepositCash implements Ledger.
func (l *BacktestLedger) DepositCash(timestamp time.Time, amount float64) error {
	value := decimal.NewFromFloat(amount).Round(int32(l.precision))
	if !value.IsPositive() {
		return errors.Newf(errors.ErrCodeInvalidDeposit, "deposit amount must be positive: %f", amount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.cash.Add(value)
	if err := l.insertCashFlow(l.db, timestamp, CashFlowDeposit, value, balance); err != nil {
		return err
	}

	l.cash = balance

	if l.log != nil {
		l.log.Debug("Cash deposited",
			zap.Time("timestamp", timestamp),
			zap.Float64("amount", value.InexactFloat64()),
			zap.Float64("balance", balance.InexactFloat64()),
		)
	}

	return nil
}

// Holding returns the quantity currently held for symbol.
func (l *BacktestLedger) Holding(symbol string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if h, ok := l.holdings[symbol]; ok {
		return h.quantity
	}

	return 0
}

// Buy books a purchase of quantity shares. It fails when cash does not cover
// the traded amount plus the transaction cost.
func (l *BacktestLedger) Buy(timestamp time.Time, instrument types.Instrument, price float64, quantity int64) (types.TradeRecord, error) {
	if err := instrument.Validate(); err != nil {
		return types.TradeRecord{}, errors.Wrap(errors.ErrCodeInvalidInstrument, "invalid instrument", err)
	}

	if price <= 0 {
		return types.TradeRecord{}, errors.Newf(errors.ErrCodeInvalidPrice, "price must be positive: %f", price)
	}

	if quantity <= 0 {
		return types.TradeRecord{}, errors.Newf(errors.ErrCodeInvalidQuantity, "quantity must be positive: %d", quantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cost := l.cost(types.TradeSideBuy, instrument, price, quantity)
	need := tradedAmount(instrument, price, quantity).Add(decimal.NewFromFloat(cost.Total)).Round(int32(l.precision))

	if need.GreaterThan(l.cash) {
		return types.TradeRecord{}, errors.Newf(errors.ErrCodeInsufficientCash,
			"buy cost (%s) exceeds available cash (%s)", need.String(), l.cash.String())
	}

	balance := l.cash.Sub(need)
	trade := types.TradeRecord{
		ID:        uuid.New().String(),
		Timestamp: timestamp,
		Symbol:    instrument.Symbol,
		Side:      types.TradeSideBuy,
		Quantity:  quantity,
		Price:     price,
		Cost:      cost,
		CashAfter: balance.InexactFloat64(),
		PnL:       0,
	}

	if err := l.book(trade, CashFlowBuy, need.Neg(), balance); err != nil {
		return types.TradeRecord{}, err
	}

	h, ok := l.holdings[instrument.Symbol]
	if !ok {
		h = &holding{quantity: 0, costBasis: decimal.Zero}
		l.holdings[instrument.Symbol] = h
	}

	h.quantity += quantity
	h.costBasis = h.costBasis.Add(need)
	l.cash = balance

	return trade, nil
}

// Sell books a sale. FullPosition sells the whole holding and an exact
// quantity larger than the holding is reduced to the holding.
func (l *BacktestLedger) Sell(timestamp time.Time, instrument types.Instrument, price float64, quantity types.Quantity) (types.TradeRecord, error) {
	if err := instrument.Validate(); err != nil {
		return types.TradeRecord{}, errors.Wrap(errors.ErrCodeInvalidInstrument, "invalid instrument", err)
	}

	if price <= 0 {
		return types.TradeRecord{}, errors.Newf(errors.ErrCodeInvalidPrice, "price must be positive: %f", price)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	h, ok := l.holdings[instrument.Symbol]
	if !ok || h.quantity == 0 {
		return types.TradeRecord{}, errors.Newf(errors.ErrCodeInsufficientHolding, "no %s held", instrument.Symbol)
	}

	n := h.quantity
	if exact, isExact := quantity.Exact(); isExact {
		if exact <= 0 {
			return types.TradeRecord{}, errors.Newf(errors.ErrCodeInvalidQuantity, "quantity must be positive: %d", exact)
		}

		if exact < n {
			n = exact
		}
	}

	cost := l.cost(types.TradeSideSell, instrument, price, n)
	proceeds := tradedAmount(instrument, price, n).
		Sub(decimal.NewFromFloat(cost.Total)).
		Round(int32(l.precision))

	// average entry cost of the sold part
	released := h.costBasis.Mul(decimal.NewFromInt(n)).Div(decimal.NewFromInt(h.quantity))
	pnl := proceeds.Sub(released).Round(int32(l.precision))
	balance := l.cash.Add(proceeds)

	trade := types.TradeRecord{
		ID:        uuid.New().String(),
		Timestamp: timestamp,
		Symbol:    instrument.Symbol,
		Side:      types.TradeSideSell,
		Quantity:  n,
		Price:     price,
		Cost:      cost,
		CashAfter: balance.InexactFloat64(),
		PnL:       pnl.InexactFloat64(),
	}

	if err := l.book(trade, CashFlowSell, proceeds, balance); err != nil {
		return types.TradeRecord{}, err
	}

	h.quantity -= n
	h.costBasis = h.costBasis.Sub(released)

	if h.quantity == 0 {
		delete(l.holdings, instrument.Symbol)
	}

	l.cash = balance

	return trade, nil
}

// book writes a trade and its cash flow in one transaction.
func (l *BacktestLedger) book(trade types.TradeRecord, kind CashFlowKind, amount decimal.Decimal, balance decimal.Decimal) error {
	tx, err := l.db.Begin()
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to begin transaction", err)
	}

	l.seq++

	_, err = l.sq.
		Insert("trades").
		Columns(
			"seq", "id", "timestamp", "symbol", "side", "quantity", "price",
			"commission", "stamp_tax", "total_cost", "cash_after", "pnl",
		).
		Values(
			l.seq, trade.ID, trade.Timestamp, trade.Symbol, string(trade.Side), trade.Quantity, trade.Price,
			trade.Cost.Commission, trade.Cost.StampTax, trade.Cost.Total, trade.CashAfter, trade.PnL,
		).
		RunWith(tx).
		Exec()
	if err != nil {
		tx.Rollback()

		return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to insert trade", err)
	}

	if err := l.insertCashFlow(tx, trade.Timestamp, kind, amount, balance); err != nil {
		tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to commit transaction", err)
	}

	if l.log != nil {
		l.log.Debug("Trade booked",
			zap.String("symbol", trade.Symbol),
			zap.String("side", string(trade.Side)),
			zap.Int64("quantity", trade.Quantity),
			zap.Float64("price", trade.Price),
			zap.Float64("cash_after", trade.CashAfter),
		)
	}

	return nil
}

func (l *BacktestLedger) insertCashFlow(runner squirrel.BaseRunner, timestamp time.Time, kind CashFlowKind, amount decimal.Decimal, balance decimal.Decimal) error {
	l.seq++

	_, err := l.sq.
		Insert("cash_flows").
		Columns("seq", "id", "timestamp", "kind", "amount", "balance").
		Values(l.seq, uuid.New().String(), timestamp, string(kind), amount.InexactFloat64(), balance.InexactFloat64()).
		RunWith(runner).
		Exec()
	if err != nil {
		return errors.Wrap(errors.ErrCodeLedgerWriteFailed, fmt.Sprintf("failed to insert %s cash flow", kind), err)
	}

	return nil
}

// CashFlows returns the cash journal in booking order.
func (l *BacktestLedger) CashFlows() ([]CashFlow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.sq.
		Select("id", "timestamp", "kind", "amount", "balance").
		From("cash_flows").
		OrderBy("seq ASC").
		RunWith(l.db).
		Query()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerQueryFailed, "failed to query cash flows", err)
	}
	defer rows.Close()

	var flows []CashFlow

	for rows.Next() {
		var flow CashFlow
		if err := rows.Scan(&flow.ID, &flow.Timestamp, &flow.Kind, &flow.Amount, &flow.Balance); err != nil {
			return nil, errors.Wrap(errors.ErrCodeLedgerQueryFailed, "failed to scan cash flow", err)
		}

		flows = append(flows, flow)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerQueryFailed, "failed to read cash flows", err)
	}

	return flows, nil
}

// Trades returns every booked trade in booking order.
func (l *BacktestLedger) Trades() ([]types.TradeRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := l.sq.
		Select("id", "timestamp", "symbol", "side", "quantity", "price", "commission", "stamp_tax", "total_cost", "cash_after", "pnl").
		From("trades").
		OrderBy("seq ASC").
		RunWith(l.db).
		Query()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerQueryFailed, "failed to query trades", err)
	}
	defer rows.Close()

	var trades []types.TradeRecord

	for rows.Next() {
		var trade types.TradeRecord

		err := rows.Scan(
			&trade.ID,
			&trade.Timestamp,
			&trade.Symbol,
			&trade.Side,
			&trade.Quantity,
			&trade.Price,
			&trade.Cost.Commission,
			&trade.Cost.StampTax,
			&trade.Cost.Total,
			&trade.CashAfter,
			&trade.PnL,
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeLedgerQueryFailed, "failed to scan trade", err)
		}

		trades = append(trades, trade)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLedgerQueryFailed, "failed to read trades", err)
	}

	return trades, nil
}

// Close releases the journal database.
func (l *BacktestLedger) Close() error {
	return l.db.Close()
}
