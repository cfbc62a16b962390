package hotel

import (
	"errors"
	"fmt"
	"slices"
)

// Employee is a member of the hotel staff with an ordered task list.
type Employee struct {
	id       int
	name     string
	position string
	salary   float64
	tasks    []string
}

func NewEmployee(id int, name, position string, salary float64) (*Employee, error) {
	var errs []error
	if name == "" {
		errs = append(errs, errors.New("employee name is empty"))
	}
	if salary < 0 {
		errs = append(errs, fmt.Errorf("employee salary %.2f is negative", salary))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &Employee{id: id, name: name, position: position, salary: salary}, nil
}

func (e *Employee) ID() int          { return e.id }
func (e *Employee) Name() string     { return e.name }
func (e *Employee) Position() string { return e.position }
func (e *Employee) Salary() float64  { return e.salary }

func (e *Employee) SetID(id int)                { e.id = id }
func (e *Employee) SetName(name string)         { e.name = name }
func (e *Employee) SetPosition(position string) { e.position = position }
func (e *Employee) SetSalary(salary float64)    { e.salary = salary }

// Tasks returns a copy of the task list in insertion order.
func (e *Employee) Tasks() []string {
	return slices.Clone(e.tasks)
}

// AddTask appends the task; duplicates are kept.
func (e *Employee) AddTask(task string) {
	e.tasks = append(e.tasks, task)
}

// RemoveTask drops the first occurrence of task. A missing task is a notice,
// not an error, and leaves the list untouched.
func (e *Employee) RemoveTask(task string) Outcome {
	i := slices.Index(e.tasks, task)
	if i < 0 {
		return fail(KindNoop, MsgTaskNotFound)
	}
	e.tasks = slices.Delete(e.tasks, i, i+1)
	return ok(fmt.Sprintf("Task %q removed.", task))
}

func (e *Employee) clone() Employee {
	c := *e
	c.tasks = slices.Clone(e.tasks)
	return c
}
