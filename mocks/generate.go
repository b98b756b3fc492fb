package mocks

//go:generate mockgen -destination=./mock_ledger.go -package=mocks github.com/rxtech-lab/argo-sizing/internal/ledger Ledger
//go:generate mockgen -destination=./mock_rule.go -package=mocks github.com/rxtech-lab/argo-sizing/internal/moneymanager Rule
//go:generate mockgen -destination=./mock_recorder.go -package=mocks github.com/rxtech-lab/argo-sizing/internal/diagnostics Recorder
