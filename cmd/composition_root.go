package cmd

import (
	"production/internal/adapters/out/postgres"
	"production/internal/core/application/usecases/commands"
	"production/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePanCommandHandler() commands.CreatePanCommandHandler {
	var f commands.PanUoWFactory = FuncPanUoWFactory(func() commands.PanUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePanCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWorkcenterCommandHandler() commands.CreateWorkcenterCommandHandler {
	var f commands.WorkcenterUoWFactory = FuncWorkcenterUoWFactory(func() commands.WorkcenterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkcenterCommandHandler(f)
}

func (c *CompositionRoot) CreateMoveOrderCommandHandler() commands.MoveOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPanCommandHandler() commands.AssignPanCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPanCommandHandler(f)
}

func (c *CompositionRoot) CreateGetProductionOrdersQueryHandler() queries.GetProductionOrdersQueryHandler {
	return queries.NewGetProductionOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionOrderQueryHandler() queries.GetProductionOrderQueryHandler {
	return queries.NewGetProductionOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionOrdersByPhaseQueryHandler() queries.GetProductionOrdersByPhaseQueryHandler {
	return queries.NewGetProductionOrdersByPhaseQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionOrdersByBufferQueryHandler() queries.GetProductionOrdersByBufferQueryHandler {
	return queries.NewGetProductionOrdersByBufferQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPansQueryHandler() queries.GetPansQueryHandler {
	return queries.NewGetPansQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkcentersQueryHandler() queries.GetWorkcentersQueryHandler {
	return queries.NewGetWorkcentersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPanUoWFactory func() commands.PanUoW

func (f FuncPanUoWFactory) Create() commands.PanUoW {
	return f()
}

type FuncWorkcenterUoWFactory func() commands.WorkcenterUoW

func (f FuncWorkcenterUoWFactory) Create() commands.WorkcenterUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
