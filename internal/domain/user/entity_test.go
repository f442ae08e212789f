//go:build unit

package user_test

import (
	"testing"

	"travel-booking/internal/domain/user"
	"travel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, "customer@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.True(t, actual.IsActive())
		assert.NoError(t, actual.EnsureCanBook())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "大文字は小文字に正規化OK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Valid@Example.com") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "customer ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("customer") },
			},
			{
				name:   "operator ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("viewer") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("非アクティブユーザーは予約不可", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)
		require.ErrorIs(t, actual.EnsureCanBook(), user.ErrUserInactive)
	})

	t.Run("スタッフ判定", func(t *testing.T) {
		assert.False(t, user.RoleCustomer.IsStaff())
		assert.True(t, user.RoleOperator.IsStaff())
		assert.True(t, user.RoleAdmin.IsStaff())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
