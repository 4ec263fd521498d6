package rbac

// Permission identifiers used by the route guards. Permissions are granted
// to roles; users carry roles.
const (
	PermMasterView    = "master.view"
	PermMasterEdit    = "master.edit"
	PermSalesView     = "sales.view"
	PermSalesEdit     = "sales.edit"
	PermInventoryView = "inventory.view"
	PermInventoryEdit = "inventory.edit"
	PermInvoiceView   = "invoice.view"
	PermInvoiceEdit   = "invoice.edit"
	PermInvoiceExport = "invoice.export"
	PermUsersManage   = "users.manage"
	PermRolesManage   = "roles.manage"
)
