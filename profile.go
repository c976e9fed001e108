package expenses

// Profile is the identity and derived financial state of one user,
// independent of the stored credential.
type Profile struct {
	username string
	age      int
	balance  Amount
}

// NewProfile creates a profile. The username is immutable once created.
func NewProfile(username string, age int, balance Amount) *Profile {
	return &Profile{username: username, age: age, balance: balance}
}

func (p *Profile) Username() string { return p.username }
func (p *Profile) Age() int         { return p.age }
func (p *Profile) Balance() Amount  { return p.balance }

// UpdateBalance adds delta to the balance. There is no bounds checking:
// balances may go negative, the system enforces no overdraft policy.
func (p *Profile) UpdateBalance(delta Amount) {
	p.balance = p.balance.Add(delta)
}
