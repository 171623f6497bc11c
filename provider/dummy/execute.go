package dummy

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-txflow/instruction"
	"github.com/tarantool/go-txflow/substate"
	"github.com/tarantool/go-txflow/txn"
)

var (
	errUnknownFunction = errors.New("function not found")
	errUnknownMethod   = errors.New("method not found")
	errUnknownTarget   = errors.New("component not found")
	errArguments       = errors.New("invalid arguments")
	errWorkspace       = errors.New("workspace error")
	errNotFee          = errors.New("fee instruction is not a fee payment")
)

// session executes a single request against the committed ledger state.
// Nothing is written to the ledger until commit.
type session struct {
	p *Provider

	up   []substate.Change
	down []substate.Change
	seen map[substate.ID]struct{}

	faucets   map[string]faucet
	vaults    map[string]string
	deposits  map[string]int64
	versions  map[string]uint32
	workspace map[string]bucket
	last      *bucket
}

func (p *Provider) execute(req txn.Request) *transaction {
	tr := &transaction{
		polls:     0,
		dryRun:    req.IsDryRun(),
		effect:    nil,
		result:    txn.ResultPayload{Accept: nil, Reject: ""},
		finalized: false,
	}

	if reason, ok := p.scriptedRejection(req); ok {
		tr.result.Reject = reason
		return tr
	}

	sess := &session{
		p:         p,
		up:        nil,
		down:      nil,
		seen:      make(map[substate.ID]struct{}),
		faucets:   make(map[string]faucet),
		vaults:    make(map[string]string),
		deposits:  make(map[string]int64),
		versions:  make(map[string]uint32),
		workspace: make(map[string]bucket),
		last:      nil,
	}

	for _, inst := range req.FeeInstructions() {
		if err := sess.payFee(inst); err != nil {
			tr.result.Reject = err.Error()
			return tr
		}
	}

	for _, inst := range req.Instructions() {
		if err := sess.apply(inst); err != nil {
			tr.result.Reject = err.Error()
			return tr
		}
	}

	tr.result.Accept = &txn.AcceptBranch{
		UpSubstates:   sess.up,
		DownSubstates: sess.down,
	}
	tr.effect = sess.commit

	return tr
}

func (p *Provider) scriptedRejection(req txn.Request) (string, bool) {
	for _, inst := range append(req.FeeInstructions(), req.Instructions()...) {
		call := inst.Function()
		if inst.Kind() == instruction.KindCallMethod {
			call = inst.Method()
		}

		if reason, ok := p.opts.rejections[call]; ok && call != "" {
			return reason, true
		}
	}

	return "", false
}

// touch records a created or updated substate once per transaction.
func (s *session) touch(id substate.ID) {
	if _, ok := s.seen[id]; ok {
		return
	}

	s.seen[id] = struct{}{}

	version, exists := s.p.versions[id.Address]
	if !exists {
		s.up = append(s.up, substate.Change{ID: id, Version: 0})
		s.versions[id.Address] = 0

		return
	}

	s.down = append(s.down, substate.Change{ID: id, Version: version})
	s.up = append(s.up, substate.Change{ID: id, Version: version + 1})
	s.versions[id.Address] = version + 1
}

func (s *session) payFee(inst instruction.Instruction) error {
	if !inst.IsFeePayment() || inst.Component() != s.p.opts.account.Address {
		return fmt.Errorf("%w: %s", errNotFee, inst)
	}

	s.touch(substate.Component(s.p.opts.account.Address))
	s.touch(substate.ID{Tag: substate.TagVault, Address: s.p.feeVault})

	return nil
}

func (s *session) apply(inst instruction.Instruction) error {
	switch inst.Kind() {
	case instruction.KindCallFunction:
		return s.callFunction(inst)
	case instruction.KindCallMethod:
		return s.callMethod(inst)
	case instruction.KindPutLastOutputOnWorkspace:
		if s.last == nil {
			return fmt.Errorf("%w: no instruction output to put on workspace", errWorkspace)
		}

		s.workspace[string(inst.Key())] = *s.last
		s.last = nil

		return nil
	default:
		return fmt.Errorf("%w: %s", instruction.ErrUnknownKind, inst.Kind())
	}
}

func (s *session) callFunction(inst instruction.Instruction) error {
	if inst.Function() != MintFunction {
		return fmt.Errorf("%w: %s on template %s", errUnknownFunction, inst.Function(), inst.Template())
	}

	args := inst.Args()
	if len(args) != 2 || args[0].IsWorkspace() || args[1].IsWorkspace() {
		return fmt.Errorf("%w: %s expects initial supply and symbol", errArguments, MintFunction)
	}

	created := faucet{
		resource: "resource_" + newAddress(),
		vault:    "vault_" + newAddress(),
	}
	component := "component_" + newAddress()

	s.touch(substate.Resource(created.resource))
	s.touch(substate.ID{Tag: substate.TagVault, Address: created.vault})
	s.touch(substate.Component(component))

	s.faucets[component] = created
	s.last = nil

	return nil
}

func (s *session) lookupFaucet(component string) (faucet, bool) {
	if f, ok := s.faucets[component]; ok {
		return f, true
	}

	f, ok := s.p.faucets[component]

	return f, ok
}

func (s *session) callMethod(inst instruction.Instruction) error {
	switch inst.Method() {
	case TakeMethod:
		f, ok := s.lookupFaucet(inst.Component())
		if !ok {
			return fmt.Errorf("%w: %s", errUnknownTarget, inst.Component())
		}

		s.touch(substate.Component(inst.Component()))
		s.touch(substate.ID{Tag: substate.TagVault, Address: f.vault})
		s.last = &bucket{resource: f.resource, amount: s.p.opts.freeCoins}

		return nil
	case DepositMethod:
		if inst.Component() != s.p.opts.account.Address {
			return fmt.Errorf("%w: %s", errUnknownTarget, inst.Component())
		}

		args := inst.Args()
		if len(args) != 1 || !args[0].IsWorkspace() {
			return fmt.Errorf("%w: %s expects a workspace bucket", errArguments, DepositMethod)
		}

		key := string(args[0].Key())

		b, ok := s.workspace[key]
		if !ok {
			return fmt.Errorf("%w: key %v is empty", errWorkspace, args[0].Key())
		}

		delete(s.workspace, key)

		s.touch(substate.Component(inst.Component()))
		s.touch(substate.ID{Tag: substate.TagVault, Address: s.vaultFor(b.resource)})
		s.deposits[b.resource] += b.amount
		s.last = nil

		return nil
	default:
		return fmt.Errorf("%w: %s on %s", errUnknownMethod, inst.Method(), inst.Component())
	}
}

func (s *session) vaultFor(resource string) string {
	if vault, ok := s.vaults[resource]; ok {
		return vault
	}

	if vault, ok := s.p.vaults[resource]; ok {
		return vault
	}

	vault := "vault_" + newAddress()
	s.vaults[resource] = vault

	return vault
}

// commit writes the session effects to the ledger. Caller must hold p.mu.
func (s *session) commit() {
	for address, version := range s.versions {
		s.p.versions[address] = version
	}

	for component, f := range s.faucets {
		s.p.faucets[component] = f
	}

	for resource, vault := range s.vaults {
		s.p.vaults[resource] = vault
	}

	for resource, amount := range s.deposits {
		s.p.balances[resource] += amount
	}
}
