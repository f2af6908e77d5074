package battle

// PlayerMaxHP is the player's HP in every battle, regardless of level.
const PlayerMaxHP = 10.0

// Combatant is one side of a battle.
type Combatant struct {
	Name  string
	HP    float64
	MaxHP float64
}

// NewCombatant creates a combatant at full health.
func NewCombatant(name string, maxHP float64) Combatant {
	return Combatant{Name: name, HP: maxHP, MaxHP: maxHP}
}

// TakeDamage applies damage, never dropping below 0. Returns true if the
// combatant is defeated.
func (c *Combatant) TakeDamage(amount float64) bool {
	if amount > 0 {
		c.HP -= amount
	}
	if c.HP < 0 {
		c.HP = 0
	}
	return c.Defeated()
}

// Heal restores HP, never exceeding MaxHP.
func (c *Combatant) Heal(amount float64) {
	if amount > 0 {
		c.HP += amount
	}
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

// Defeated reports whether HP is exhausted.
func (c Combatant) Defeated() bool {
	return c.HP <= 0
}

// Fraction returns HP as a 0..1 ratio for health bars.
func (c Combatant) Fraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return c.HP / c.MaxHP
}
