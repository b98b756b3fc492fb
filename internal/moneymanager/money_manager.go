package moneymanager

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/rxtech-lab/argo-sizing/internal/diagnostics"
	"github.com/rxtech-lab/argo-sizing/internal/ledger"
	"github.com/rxtech-lab/argo-sizing/internal/logger"
	"github.com/rxtech-lab/argo-sizing/internal/metrics"
	"github.com/rxtech-lab/argo-sizing/internal/types"
	"github.com/rxtech-lab/argo-sizing/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	operationBuy        = "buy"
	operationSell       = "sell"
	operationShortSell  = "short_sell"
	operationCoverShort = "cover_short"
	operationClone      = "clone"
)

// MoneyManager decides how many shares to trade for a request. It delegates
// the raw figure to a Rule and then applies lot rounding, the per-trade
// maximum and the cash check against the bound ledger.
//
// A MoneyManager is not safe for concurrent use. Clone it per goroutine.
type MoneyManager struct {
	name     string
	params   Params
	rule     Rule
	ledger   ledger.Ledger
	query    types.Query
	log      *logger.Logger
	recorder diagnostics.Recorder
	metrics  *metrics.SizingMetrics
}

// NewMoneyManager creates a money manager around rule. An empty name falls
// back to the rule's name and a nil logger to a no-op logger.
func NewMoneyManager(name string, rule Rule, log *logger.Logger) (*MoneyManager, error) {
	if isNilRule(rule) {
		return nil, errors.New(errors.ErrCodeMissingParameter, "sizing rule is required")
	}

	if name == "" {
		name = rule.Name()
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &MoneyManager{
		name:     name,
		params:   DefaultParams(),
		rule:     rule,
		ledger:   nil,
		query:    types.EmptyQuery(),
		log:      log,
		recorder: nil,
		metrics:  nil,
	}, nil
}

// SetLedger binds the ledger used for cash and holdings. Pass nil to unbind.
func (m *MoneyManager) SetLedger(l ledger.Ledger) {
	m.ledger = l
}

func (m *MoneyManager) Ledger() ledger.Ledger {
	return m.ledger
}

// SetRecorder sets where diagnostics are stored. Nil disables recording.
func (m *MoneyManager) SetRecorder(recorder diagnostics.Recorder) {
	m.recorder = recorder
}

// SetMetrics sets the prometheus collectors. Nil disables metrics.
func (m *MoneyManager) SetMetrics(sizingMetrics *metrics.SizingMetrics) {
	m.metrics = sizingMetrics
}

func (m *MoneyManager) Name() string {
	return m.name
}

func (m *MoneyManager) SetName(name string) {
	m.name = name
}

// Query returns the evaluation window the manager was set up for.
func (m *MoneyManager) Query() types.Query {
	return m.query
}

func (m *MoneyManager) SetQuery(query types.Query) {
	m.query = query
}

func (m *MoneyManager) Rule() Rule {
	return m.rule
}

// Params returns a copy of the current options.
func (m *MoneyManager) Params() Params {
	return m.params
}

// SetParams replaces all options. Invalid options leave the manager unchanged.
func (m *MoneyManager) SetParams(params Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	m.params = params

	return nil
}

// SetParam changes a single option by name, e.g. "auto-fund".
func (m *MoneyManager) SetParam(name string, value any) error {
	params := m.params
	if err := params.Set(name, value); err != nil {
		return err
	}

	m.params = params

	return nil
}

// GetParam returns a single option by name.
func (m *MoneyManager) GetParam(name string) (any, error) {
	return m.params.Get(name)
}

// Reset clears the rule's accumulated state, if it has any.
func (m *MoneyManager) Reset() {
	if resetter, ok := m.rule.(Resetter); ok {
		resetter.Reset()
	}
}

// BuyNotify forwards an executed buy to the rule.
func (m *MoneyManager) BuyNotify(trade types.TradeRecord) {
	if notifier, ok := m.rule.(TradeNotifier); ok {
		notifier.BuyNotify(trade)
	}
}

// SellNotify forwards an executed sell to the rule.
func (m *MoneyManager) SellNotify(trade types.TradeRecord) {
	if notifier, ok := m.rule.(TradeNotifier); ok {
		notifier.SellNotify(trade)
	}
}

// ResolveBuyQuantity returns the number of shares to buy. The result is
// zero or a multiple of the instrument's minimum trade quantity no larger
// than its maximum. Without auto-fund it is also affordable with the
// ledger's current cash.
func (m *MoneyManager) ResolveBuyQuantity(req types.SizingRequest) types.Quantity {
	if m.ledger == nil {
		m.report(operationBuy, req, diagnostics.ClassUnusableCollaborator, "ledger is not bound")

		return m.decide(operationBuy, types.Exact(0))
	}

	if req.Instrument.IsNull() {
		m.report(operationBuy, req, diagnostics.ClassUnusableCollaborator, "instrument is null")

		return m.decide(operationBuy, types.Exact(0))
	}

	if !req.Instrument.IsValid() {
		m.report(operationBuy, req, diagnostics.ClassUnusableCollaborator, "instrument is invalid")

		return m.decide(operationBuy, types.Exact(0))
	}

	if !positive(req.Risk) {
		m.report(operationBuy, req, diagnostics.ClassInvalidInput, "risk must be a positive finite number")

		return m.decide(operationBuy, types.Exact(0))
	}

	if !positive(req.Price) {
		m.report(operationBuy, req, diagnostics.ClassInvalidInput, "price must be a positive finite number")

		return m.decide(operationBuy, types.Exact(0))
	}

	held := m.ledger.HeldInstrumentCount()
	if held >= m.params.MaxInstrumentCount {
		m.log.Debug("Portfolio is full, skipping buy",
			append(requestFields(req),
				zap.Int("held", held),
				zap.Int("max_instrument_count", m.params.MaxInstrumentCount),
			)...,
		)

		return m.decide(operationBuy, types.Exact(0))
	}

	if cash := m.ledger.CurrentCash(); !finite(cash) {
		m.report(operationBuy, req, diagnostics.ClassUnusableCollaborator, "ledger cash is not a finite number",
			zap.Float64("cash", cash),
		)

		return m.decide(operationBuy, types.Exact(0))
	}

	quantity := m.rule.ComputeBuyQuantity(m.ledger, req)
	minTrade := req.Instrument.MinTradeQuantity

	if quantity < minTrade {
		m.log.Debug("Rule quantity is below the minimum trade quantity",
			append(requestFields(req),
				zap.Int64("quantity", quantity),
				zap.Int64("min_trade_quantity", minTrade),
			)...,
		)

		return m.decide(operationBuy, types.Exact(0))
	}

	quantity = quantity / minTrade * minTrade

	if maxTrade := req.Instrument.MaxTradeQuantity / minTrade * minTrade; quantity > maxTrade {
		m.log.Info("Clamping buy quantity to the maximum trade quantity",
			append(requestFields(req),
				zap.Int64("quantity", quantity),
				zap.Int64("max_trade_quantity", maxTrade),
			)...,
		)

		quantity = maxTrade
	}

	if m.params.AutoFund {
		return m.decide(operationBuy, types.Exact(m.fundBuy(req, quantity)))
	}

	return m.decide(operationBuy, types.Exact(m.shrinkToCash(req, quantity)))
}

// ResolveSellQuantity returns the quantity to sell, possibly the full position.
func (m *MoneyManager) ResolveSellQuantity(req types.SizingRequest) types.Quantity {
	if m.ledger == nil {
		m.report(operationSell, req, diagnostics.ClassUnusableCollaborator, "ledger is not bound")

		return m.decide(operationSell, types.Exact(0))
	}

	switch req.Origin {
	case types.OriginEnvironment:
		if m.params.ForceCleanOnEnvironment {
			return m.decide(operationSell, types.FullPosition())
		}
	case types.OriginCondition:
		if m.params.ForceCleanOnCondition {
			return m.decide(operationSell, types.FullPosition())
		}
	}

	if !finite(req.Risk) || !finite(req.Price) {
		m.report(operationSell, req, diagnostics.ClassInvalidInput, "risk and price must be finite numbers")

		return m.decide(operationSell, types.Exact(0))
	}

	if req.Risk <= 0 {
		m.log.Debug("Non-positive risk, skipping sell", requestFields(req)...)

		return m.decide(operationSell, types.Exact(0))
	}

	return m.decide(operationSell, m.rule.ComputeSellQuantity(m.ledger, req))
}

// ResolveShortSellQuantity returns the quantity to sell short.
func (m *MoneyManager) ResolveShortSellQuantity(req types.SizingRequest) types.Quantity {
	return m.resolveShort(operationShortSell, req, m.rule.ComputeShortSellQuantity)
}

// ResolveCoverShortQuantity returns the quantity to buy back to cover a short.
func (m *MoneyManager) ResolveCoverShortQuantity(req types.SizingRequest) types.Quantity {
	return m.resolveShort(operationCoverShort, req, m.rule.ComputeCoverShortQuantity)
}

func (m *MoneyManager) resolveShort(
	operation string,
	req types.SizingRequest,
	compute func(ledger.Ledger, types.SizingRequest) types.Quantity,
) types.Quantity {
	if m.ledger == nil {
		m.report(operation, req, diagnostics.ClassUnusableCollaborator, "ledger is not bound")

		return m.decide(operation, types.Exact(0))
	}

	if !positive(req.Risk) {
		m.report(operation, req, diagnostics.ClassInvalidInput, "risk must be a positive finite number")

		return m.decide(operation, types.Exact(0))
	}

	if !finite(req.Price) {
		m.report(operation, req, diagnostics.ClassInvalidInput, "price must be a finite number")

		return m.decide(operation, types.Exact(0))
	}

	return m.decide(operation, compute(m.ledger, req))
}

// Clone returns an independent manager with a cloned rule, the same options,
// name and query, and no bound ledger. When the rule cannot be cloned the
// failure is reported and the receiver itself is returned, so callers share it.
func (m *MoneyManager) Clone() *MoneyManager {
	rule, err := cloneRule(m.rule)
	if err != nil {
		m.log.Error("Failed to clone sizing rule, sharing the original money manager",
			zap.String("name", m.name),
			zap.String("rule", m.rule.Name()),
			zap.Error(err),
		)
		m.record(diagnostics.Diagnostic{
			Operation: operationClone,
			Class:     diagnostics.ClassPolicyFailure,
			Message:   err.Error(),
			Fields:    map[string]string{"rule": m.rule.Name()},
		})

		return m
	}

	return &MoneyManager{
		name:     m.name,
		params:   m.params,
		rule:     rule,
		ledger:   nil,
		query:    m.query,
		log:      m.log,
		recorder: m.recorder,
		metrics:  m.metrics,
	}
}

func (m *MoneyManager) String() string {
	if m == nil {
		return "MoneyManager(NULL)"
	}

	return fmt.Sprintf("MoneyManager(%s, %s)", m.name, m.params)
}

// fundBuy deposits the cash the buy is short of and returns quantity
// unchanged. A failed deposit is reported but does not cancel the buy.
func (m *MoneyManager) fundBuy(req types.SizingRequest, quantity int64) int64 {
	precision := int32(m.ledger.CashPrecision())
	cash := decimal.NewFromFloat(m.ledger.CurrentCash())
	cost := m.ledger.TransactionCost(req.Timestamp, req.Instrument, req.Price, quantity)
	if !finite(cost.Total) {
		m.report(operationBuy, req, diagnostics.ClassUnusableCollaborator, "transaction cost is not a finite number",
			zap.Float64("cost", cost.Total),
		)

		return 0
	}

	money := decimal.NewFromFloat(req.Price).
		Mul(decimal.NewFromInt(quantity)).
		Mul(decimal.NewFromFloat(req.Instrument.ContractMultiplier)).
		Add(decimal.NewFromFloat(cost.Total)).
		RoundCeil(precision)

	if !money.GreaterThan(cash) {
		return quantity
	}

	shortfall := money.Sub(cash).RoundCeil(precision)

	if err := m.ledger.DepositCash(req.Timestamp, shortfall.InexactFloat64()); err != nil {
		m.report(operationBuy, req, diagnostics.ClassUnusableCollaborator, "auto-fund deposit failed",
			zap.String("deposit", shortfall.String()),
			zap.Error(err),
		)

		return quantity
	}

	m.log.Info("Auto-funded buy",
		append(requestFields(req),
			zap.Int64("quantity", quantity),
			zap.String("deposit", shortfall.String()),
		)...,
	)
	m.metrics.RecordDeposit(shortfall.InexactFloat64())

	return quantity
}

// shrinkToCash lowers quantity one lot at a time until price*quantity plus
// the transaction cost fits into the current cash. It returns 0 when even
// one lot is unaffordable.
func (m *MoneyManager) shrinkToCash(req types.SizingRequest, quantity int64) int64 {
	minTrade := req.Instrument.MinTradeQuantity
	cash := decimal.NewFromFloat(m.ledger.CurrentCash())
	steps := 0

	need, ok := m.requiredCash(req, quantity)
	for ok && quantity > minTrade && need.GreaterThan(cash) {
		quantity -= minTrade
		steps++
		need, ok = m.requiredCash(req, quantity)
	}

	if !ok {
		m.report(operationBuy, req, diagnostics.ClassUnusableCollaborator, "transaction cost is not a finite number",
			zap.Int64("quantity", quantity),
		)

		return 0
	}

	if steps > 0 {
		m.metrics.RecordShrinkSteps(steps)
	}

	if need.GreaterThan(cash) {
		m.report(operationBuy, req, diagnostics.ClassInfeasibleResult, "cash does not cover a single lot",
			zap.String("cash", cash.String()),
			zap.String("need", need.String()),
		)

		return 0
	}

	return quantity
}

// requiredCash is price*quantity plus the transaction cost. ok is false when
// the ledger returns a cost that is not a finite number.
func (m *MoneyManager) requiredCash(req types.SizingRequest, quantity int64) (need decimal.Decimal, ok bool) {
	cost := m.ledger.TransactionCost(req.Timestamp, req.Instrument, req.Price, quantity)
	if !finite(cost.Total) {
		return decimal.Zero, false
	}

	return decimal.NewFromFloat(req.Price).
		Mul(decimal.NewFromInt(quantity)).
		Add(decimal.NewFromFloat(cost.Total)), true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// positive reports whether v is a finite number above zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (m *MoneyManager) decide(operation string, quantity types.Quantity) types.Quantity {
	outcome := "exact"

	switch {
	case quantity.IsFullPosition():
		outcome = "full_position"
	case quantity.IsZero():
		outcome = "zero"
	}

	m.metrics.RecordDecision(operation, outcome)
	m.log.Debug("Resolved quantity",
		zap.String("operation", operation),
		zap.Stringer("quantity", quantity),
	)

	return quantity
}

// report logs a sizing failure and records it as a diagnostic.
func (m *MoneyManager) report(operation string, req types.SizingRequest, class diagnostics.Class, message string, fields ...zap.Field) {
	logFields := append(requestFields(req),
		zap.String("operation", operation),
		zap.String("class", string(class)),
	)
	logFields = append(logFields, fields...)

	if class == diagnostics.ClassInfeasibleResult {
		m.log.Info(message, logFields...)
	} else {
		m.log.Error(message, logFields...)
	}

	m.record(diagnostics.Diagnostic{
		Timestamp: req.Timestamp,
		Symbol:    req.Instrument.Symbol,
		Operation: operation,
		Class:     class,
		Message:   message,
		Fields: map[string]string{
			"price":  strconv.FormatFloat(req.Price, 'f', -1, 64),
			"risk":   strconv.FormatFloat(req.Risk, 'f', -1, 64),
			"origin": string(req.Origin),
		},
	})
}

func (m *MoneyManager) record(entry diagnostics.Diagnostic) {
	m.metrics.RecordDiagnostic(string(entry.Class))

	if m.recorder == nil {
		return
	}

	if err := m.recorder.Record(entry); err != nil {
		m.log.Warn("Failed to record diagnostic", zap.Error(err))
	}
}

func requestFields(req types.SizingRequest) []zap.Field {
	return []zap.Field{
		zap.Time("timestamp", req.Timestamp),
		zap.String("symbol", req.Instrument.Symbol),
		zap.Float64("price", req.Price),
		zap.Float64("risk", req.Risk),
		zap.String("origin", string(req.Origin)),
	}
}

// cloneRule clones rule and rejects results that are not a distinct instance.
func cloneRule(rule Rule) (cloned Rule, err error) {
	defer func() {
		if r := recover(); r != nil {
			cloned = nil
			err = errors.Newf(errors.ErrCodeRuleCloneFailed, "rule %s panicked during clone: %v", rule.Name(), r)
		}
	}()

	cloned, err = rule.Clone()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeRuleCloneFailed, err, "failed to clone rule %s", rule.Name())
	}

	if isNilRule(cloned) {
		return nil, errors.Newf(errors.ErrCodeRuleCloneFailed, "rule %s returned no clone", rule.Name())
	}

	if sameInstance(rule, cloned) {
		return nil, errors.Newf(errors.ErrCodeRuleCloneFailed, "rule %s returned itself as its clone", rule.Name())
	}

	return cloned, nil
}

func isNilRule(rule Rule) bool {
	if rule == nil {
		return true
	}

	v := reflect.ValueOf(rule)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

func sameInstance(a, b Rule) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || va.Kind() != reflect.Pointer {
		return false
	}

	return va.Pointer() == vb.Pointer()
}
