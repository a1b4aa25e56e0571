// Package script runs user Lua files that add ex commands.
//
// Scripts run in a restricted state: only the base, table, string and math
// libraries are opened, and dofile, loadfile, load and loadstring are
// removed. A script registers commands through the greg table:
//
//	greg.command("count", function(args)
//	    greg.status(greg.rows() .. " rows")
//	end)
//
// Command functions may call:
//
//	greg.cell(row, col)  -- text at a 0-based matrix coordinate, or nil
//	greg.rows()          -- matrix row count, headers included
//	greg.cols()          -- matrix column count
//	greg.cursor()        -- row, col of the primary cursor
//	greg.status(text)    -- set the status message
//
// Each call runs under a timeout. Errors are returned to the caller, which
// shows them in the status line.
package script
