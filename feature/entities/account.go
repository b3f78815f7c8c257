package entities

// Account is a player account.
type Account struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;type:text;not null" json:"username"`
	Email    string `gorm:"column:email;type:text;not null" json:"email"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"password"`
}

// TableName overrides the table name for Account.
func (Account) TableName() string {
	return "accounts"
}

// All returns every entity the server registers with the datastore.
func All() []any {
	return []any{&Account{}}
}
