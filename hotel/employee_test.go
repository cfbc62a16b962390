package hotel_test

import (
	"testing"

	"hotel-desk/hotel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmployee(t *testing.T) {
	t.Run("should create employee with an empty task list", func(t *testing.T) {
		e, err := hotel.NewEmployee(1, "John Doe", "Receptionist", 30000)

		require.NoError(t, err)
		assert.Equal(t, 1, e.ID())
		assert.Equal(t, "John Doe", e.Name())
		assert.Equal(t, "Receptionist", e.Position())
		assert.Equal(t, 30000.0, e.Salary())
		assert.Empty(t, e.Tasks())
	})

	t.Run("should reject empty name and negative salary", func(t *testing.T) {
		e, err := hotel.NewEmployee(1, "", "Receptionist", -5)

		require.Error(t, err)
		assert.Nil(t, e)
		assert.Contains(t, err.Error(), "employee name is empty")
		assert.Contains(t, err.Error(), "employee salary -5.00 is negative")
	})

	t.Run("should update position and salary", func(t *testing.T) {
		e, _ := hotel.NewEmployee(1, "John Doe", "Receptionist", 30000)

		e.SetPosition("Manager")
		e.SetSalary(50000)

		assert.Equal(t, "Manager", e.Position())
		assert.Equal(t, 50000.0, e.Salary())
	})
}

func TestEmployeeTasks(t *testing.T) {
	t.Run("should keep insertion order and duplicates", func(t *testing.T) {
		e, _ := hotel.NewEmployee(1, "John Doe", "Receptionist", 30000)

		e.AddTask("Attend to guests at the reception")
		e.AddTask("Manage bookings")
		e.AddTask("Manage bookings")

		assert.Equal(t, []string{
			"Attend to guests at the reception",
			"Manage bookings",
			"Manage bookings",
		}, e.Tasks())
	})

	t.Run("should remove exactly one occurrence per call", func(t *testing.T) {
		e, _ := hotel.NewEmployee(1, "John Doe", "Receptionist", 30000)
		e.AddTask("Clean lobby")
		before := e.Tasks()

		for i := 0; i < 3; i++ {
			e.AddTask("Manage bookings")
		}
		for i := 0; i < 3; i++ {
			out := e.RemoveTask("Manage bookings")
			require.True(t, out.OK())
		}

		assert.Equal(t, before, e.Tasks())
	})

	t.Run("should report a missing task without changing the list", func(t *testing.T) {
		e, _ := hotel.NewEmployee(1, "John Doe", "Receptionist", 30000)
		e.AddTask("Clean lobby")

		out := e.RemoveTask("Manage bookings")

		assert.Equal(t, hotel.KindNoop, out.Kind)
		assert.Equal(t, hotel.MsgTaskNotFound, out.Message)
		assert.Equal(t, []string{"Clean lobby"}, e.Tasks())
	})

	t.Run("should hand out a copy of the tasks", func(t *testing.T) {
		e, _ := hotel.NewEmployee(1, "John Doe", "Receptionist", 30000)
		e.AddTask("Clean lobby")

		tasks := e.Tasks()
		tasks[0] = "changed"

		assert.Equal(t, []string{"Clean lobby"}, e.Tasks())
	})
}
