package schema

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
	"github.com/lunfardo314/unitrie/common"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *storage.Context {
	ctx, err := storage.InitStateStore(common.NewInMemoryKVStore(), protocol.DefaultConstants(), 0)
	require.NoError(t, err)
	return ctx
}

func randomKey(t *testing.T) ed25519.PublicKey {
	pk, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pk
}

func TestContractBalances(t *testing.T) {
	ctx := newTestContext(t)
	id := protocol.ImplicitContract(randomKey(t))

	_, err := Contracts.Balance.Get(ctx, id)
	require.ErrorIs(t, err, storage.ErrNotFound)

	ctx1, err := Contracts.Existing.Add(ctx, id)
	require.NoError(t, err)
	ctx1, err = Contracts.Balance.Set(ctx1, id, 1000)
	require.NoError(t, err)

	ctx2, err := Contracts.Balance.Set(ctx1, id, 1500)
	require.NoError(t, err)

	v, err := Contracts.Balance.Get(ctx2, id)
	require.NoError(t, err)
	require.EqualValues(t, protocol.Tez(1500), v)

	// the snapshot taken before the credit still reads the old balance
	v, err = Contracts.Balance.Get(ctx1, id)
	require.NoError(t, err)
	require.EqualValues(t, protocol.Tez(1000), v)
	require.True(t, Contracts.Existing.Has(ctx2, id))
	require.False(t, Contracts.Existing.Has(ctx, id))
}

func TestContractLifecycle(t *testing.T) {
	ctx := newTestContext(t)
	pk := randomKey(t)
	id := protocol.OriginatedContract([]byte("nonce-1"))
	mgr := protocol.PublicKeyHashFromPublicKey(pk)

	var err error
	ctx, err = Contracts.Existing.Add(ctx, id)
	require.NoError(t, err)
	ctx, err = Contracts.Balance.Init(ctx, id, 500)
	require.NoError(t, err)
	ctx, err = Contracts.Manager.Init(ctx, id, mgr)
	require.NoError(t, err)
	ctx, err = Contracts.Spendable.Init(ctx, id, true)
	require.NoError(t, err)
	ctx, err = Contracts.Counter.Init(ctx, id, 0)
	require.NoError(t, err)
	ctx, err = Contracts.Code.Set(ctx, id, protocol.Script("code"))
	require.NoError(t, err)

	// second origination of the same contract is a bug
	_, err = Contracts.Balance.Init(ctx, id, 1)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	// no delegation yet
	_, found, err := Contracts.Delegate.Get(ctx, id)
	require.NoError(t, err)
	require.False(t, found)

	code, found, err := Contracts.Code.Get(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, protocol.Script("code"), code)

	// implicit account of the manager has no code
	_, found, err = Contracts.Code.Get(ctx, protocol.ImplicitContractFromHash(mgr))
	require.NoError(t, err)
	require.False(t, found)
}

func TestProposals(t *testing.T) {
	ctx := newTestContext(t)
	a := protocol.ProtocolHash{1}
	b := protocol.ProtocolHash{2}

	var err error
	ctx, err = Votes.Proposals.Add(ctx, a)
	require.NoError(t, err)
	ctx, err = Votes.Proposals.Add(ctx, b)
	require.NoError(t, err)

	elems, err := Votes.Proposals.Elements(ctx)
	require.NoError(t, err)
	require.EqualValues(t, []protocol.ProtocolHash{a, b}, elems)

	ctx1, err := Votes.Proposals.Remove(ctx, a)
	require.NoError(t, err)
	elems, err = Votes.Proposals.Elements(ctx1)
	require.NoError(t, err)
	require.EqualValues(t, []protocol.ProtocolHash{b}, elems)

	// the pre-removal snapshot still holds both
	require.True(t, Votes.Proposals.Has(ctx, a))
}

func TestVotingPeriod(t *testing.T) {
	ctx := newTestContext(t)

	var err error
	ctx, err = Votes.PeriodKind.Init(ctx, protocol.PeriodProposal)
	require.NoError(t, err)
	ctx, err = Votes.Quorum.Set(ctx, 8000)
	require.NoError(t, err)

	_, err = Votes.PeriodKind.Init(ctx, protocol.PeriodExploration)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, found, err := Votes.CurrentProposal.Get(ctx)
	require.NoError(t, err)
	require.False(t, found)

	winner := protocol.ProtocolHash{7}
	ctx, err = Votes.CurrentProposal.Set(ctx, winner)
	require.NoError(t, err)
	ctx, err = Votes.PeriodKind.Set(ctx, protocol.PeriodExploration)
	require.NoError(t, err)

	// ballots of three delegates, tallied by iteration
	total := 0
	for i, b := range []protocol.Ballot{protocol.BallotYay, protocol.BallotNay, protocol.BallotPass} {
		pkh := protocol.PublicKeyHashFromPublicKey(randomKey(t))
		ctx, err = Votes.Listings.Set(ctx, pkh, uint32(i+1))
		require.NoError(t, err)
		ctx, err = Votes.Ballots.Init(ctx, pkh, b)
		require.NoError(t, err)
	}
	err = Votes.Ballots.Iterate(ctx, func(pkh protocol.PublicKeyHash, b protocol.Ballot) bool {
		rolls, err2 := Votes.Listings.Get(ctx, pkh)
		require.NoError(t, err2)
		total += int(rolls)
		return true
	})
	require.NoError(t, err)
	require.EqualValues(t, 6, total)
}

func TestRollLists(t *testing.T) {
	ctx := newTestContext(t)
	pk := randomKey(t)
	owner := protocol.ImplicitContract(pk)

	var err error
	ctx, err = Rolls.Next.Init(ctx, 0)
	require.NoError(t, err)

	// no roll allocated yet
	_, found, err := Rolls.LimboHead.Get(ctx)
	require.NoError(t, err)
	require.False(t, found)
	_, found, err = Rolls.ContractHead.Get(ctx, owner)
	require.NoError(t, err)
	require.False(t, found)

	// allocate rolls 0 and 1 to the contract, linked through Successor
	ctx, err = Rolls.Owner.Set(ctx, 0, pk)
	require.NoError(t, err)
	ctx, err = Rolls.Owner.Set(ctx, 1, pk)
	require.NoError(t, err)
	ctx, err = Rolls.Successor.Set(ctx, 1, 0)
	require.NoError(t, err)
	ctx, err = Rolls.ContractHead.Set(ctx, owner, 1)
	require.NoError(t, err)
	ctx, err = Rolls.Next.Set(ctx, 2)
	require.NoError(t, err)
	ctx, err = Rolls.Change.Set(ctx, owner, 555)
	require.NoError(t, err)

	// walk the contract's list: 1 -> 0 -> end
	head, found, err := Rolls.ContractHead.Get(ctx, owner)
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, protocol.RollID(1), head)
	next, found, err := Rolls.Successor.Get(ctx, head)
	require.NoError(t, err)
	require.True(t, found)
	require.EqualValues(t, protocol.RollID(0), next)
	_, found, err = Rolls.Successor.Get(ctx, next)
	require.NoError(t, err)
	require.False(t, found)

	// snapshot pass sees both rolls
	count := 0
	err = Rolls.Owner.Iterate(ctx, func(r protocol.RollID, k ed25519.PublicKey) bool {
		require.EqualValues(t, pk, k)
		count++
		return true
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestHeadSlots(t *testing.T) {
	ctx := newTestContext(t)

	_, err := Head.Level.Get(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)

	ctx, err = Head.Level.Set(ctx, 100)
	require.NoError(t, err)
	ctx, err = Head.Timestamp.Set(ctx, 1_700_000_000)
	require.NoError(t, err)
	ctx, err = Head.Fitness.Set(ctx, protocol.Fitness{0x01, 0x02})
	require.NoError(t, err)

	l, err := Head.Level.Get(ctx)
	require.NoError(t, err)
	require.EqualValues(t, protocol.Level(100), l)
	f, err := Head.Fitness.Get(ctx)
	require.NoError(t, err)
	require.EqualValues(t, protocol.Fitness{0x01, 0x02}, f)
}

func TestSeedPipeline(t *testing.T) {
	ctx := newTestContext(t)
	var nonce protocol.Nonce
	copy(nonce[:], "deterministic nonce for level 5.")

	var err error
	ctx, err = Seeds.Nonces.Init(ctx, 5, protocol.UnrevealedNonce(protocol.CommitNonce(nonce)))
	require.NoError(t, err)

	ns, err := Seeds.Nonces.Get(ctx, 5)
	require.NoError(t, err)
	require.False(t, ns.Revealed)
	require.EqualValues(t, protocol.CommitNonce(nonce), ns.Commitment)

	// the revelation replaces the commitment in place
	ctx, err = Seeds.Nonces.Set(ctx, 5, protocol.RevealedNonce(nonce))
	require.NoError(t, err)
	ns, err = Seeds.Nonces.Get(ctx, 5)
	require.NoError(t, err)
	require.True(t, ns.Revealed)

	var seed0 protocol.Seed
	ctx, err = Seeds.ForCycle.Init(ctx, 1, protocol.DeriveSeed(seed0, ns.Nonce))
	require.NoError(t, err)
	s, err := Seeds.ForCycle.Get(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, protocol.DeriveSeed(seed0, nonce), s)
}

func TestRewardSchedule(t *testing.T) {
	ctx := newTestContext(t)
	d1 := protocol.PublicKeyHashFromPublicKey(randomKey(t))
	d2 := protocol.PublicKeyHashFromPublicKey(randomKey(t))

	var err error
	ctx, err = Rewards.NextCycle.Init(ctx, 1)
	require.NoError(t, err)
	for _, d := range []protocol.PublicKeyHash{d1, d2} {
		for c := protocol.Cycle(1); c <= 2; c++ {
			ctx, err = Rewards.Amounts.Set(ctx, RewardKey{First: d, Second: c}, protocol.Tez(uint64(c)*100))
			require.NoError(t, err)
		}
	}
	ctx, err = Rewards.Date.Set(ctx, 1, 1_700_000_000)
	require.NoError(t, err)

	var sum protocol.Tez
	err = Rewards.Amounts.Iterate(ctx, func(k RewardKey, amount protocol.Tez) bool {
		sum += amount
		return true
	})
	require.NoError(t, err)
	require.EqualValues(t, protocol.Tez(600), sum)

	// one delegate, one cycle
	v, err := Rewards.Amounts.Get(ctx, RewardKey{First: d1, Second: 2})
	require.NoError(t, err)
	require.EqualValues(t, protocol.Tez(200), v)
}

func TestDelegateKeys(t *testing.T) {
	ctx := newTestContext(t)
	pk := randomKey(t)
	pkh := protocol.PublicKeyHashFromPublicKey(pk)

	var err error
	ctx, err = Delegates.PublicKeys.Init(ctx, pkh, pk)
	require.NoError(t, err)
	back, err := Delegates.PublicKeys.Get(ctx, pkh)
	require.NoError(t, err)
	require.EqualValues(t, pk, back)

	// revealing the same key twice is a bug in the caller
	_, err = Delegates.PublicKeys.Init(ctx, pkh, pk)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}
